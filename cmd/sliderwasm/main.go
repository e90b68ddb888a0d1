//go:build js && wasm

// Command sliderwasm exposes the slider to JavaScript as a global
// imageSlider(height, width, ...images) function.
//
//	const s = imageSlider("350px", "350px", {src: "a.jpg", alt: "A"}, {src: "b.jpg"});
//	s.updateConfig({imageFit: "contain", showDots: false});
//	const err = s.append("#gallery");   // null or an Error
//	const auto = s.auto(3000);          // milliseconds
//	auto.stop();
package main

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/dom/jsdom"
	"github.com/go-drift/slider/pkg/errors"
	"github.com/go-drift/slider/pkg/slider"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	errors.SetHandler(errors.NewLogHandler(logger))
	dom.SetDefault(jsdom.New())

	js.Global().Set("imageSlider", js.FuncOf(func(this js.Value, args []js.Value) any {
		return newSlider(logger, args)
	}))
	select {}
}

func newSlider(logger *zap.Logger, args []js.Value) any {
	if len(args) < 2 {
		return jsError(fmt.Errorf("imageSlider(height, width, ...images) needs a height and a width"))
	}
	images := make([]slider.Image, 0, len(args)-2)
	for _, v := range args[2:] {
		images = append(images, slider.Image{Src: stringProp(v, "src"), Alt: stringProp(v, "alt")})
	}

	s, err := slider.New(args[0].String(), args[1].String(), images,
		slider.WithAnimator(jsdom.Animator{}),
		slider.WithScheduler(jsdom.Scheduler{}),
		slider.WithLogger(logger),
	)
	if err != nil {
		return jsError(err)
	}

	obj := map[string]any{
		"id": s.ID(),
		"append": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) < 1 {
				return jsError(fmt.Errorf("append(selector) needs a selector"))
			}
			if err := s.Append(args[0].String()); err != nil {
				return jsError(err)
			}
			return js.Null()
		}),
		"auto": js.FuncOf(func(this js.Value, args []js.Value) any {
			var interval time.Duration
			if len(args) > 0 && args[0].Type() == js.TypeNumber {
				interval = time.Duration(args[0].Float() * float64(time.Millisecond))
			}
			h := s.Auto(interval)
			return map[string]any{
				"stop": js.FuncOf(func(js.Value, []js.Value) any {
					h.Stop()
					return nil
				}),
			}
		}),
		"updateConfig": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				s.UpdateConfig(configUpdate(args[0]))
			}
			return nil
		}),
	}
	return js.ValueOf(obj)
}

// configUpdate reads a partial configuration object. Keys that are not
// slider options, or that have the wrong type, are kept in Extra.
func configUpdate(v js.Value) slider.ConfigUpdate {
	var u slider.ConfigUpdate
	if v.Type() != js.TypeObject {
		return u
	}
	keys := js.Global().Get("Object").Call("keys", v)
	for i := 0; i < keys.Length(); i++ {
		key := keys.Index(i).String()
		val := v.Get(key)
		switch {
		case key == "animation" && val.Type() == js.TypeBoolean:
			u.Animation = slider.Bool(val.Bool())
		case key == "animationDuration" && val.Type() == js.TypeNumber:
			u.AnimationDuration = slider.Int(val.Int())
		case key == "imageFit" && val.Type() == js.TypeString:
			u.ImageFit = slider.Fit(slider.ImageFit(val.String()))
		case key == "showCounter" && val.Type() == js.TypeBoolean:
			u.ShowCounter = slider.Bool(val.Bool())
		case key == "showControls" && val.Type() == js.TypeBoolean:
			u.ShowControls = slider.Bool(val.Bool())
		case key == "showDots" && val.Type() == js.TypeBoolean:
			u.ShowDots = slider.Bool(val.Bool())
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[key] = goValue(val)
		}
	}
	return u
}

// goValue converts a JS primitive to its Go counterpart. Other values keep
// their JS string form.
func goValue(v js.Value) any {
	switch v.Type() {
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeNull, js.TypeUndefined:
		return nil
	default:
		return v.String()
	}
}

func stringProp(v js.Value, name string) string {
	if v.Type() != js.TypeObject {
		return ""
	}
	p := v.Get(name)
	if p.Type() != js.TypeString {
		return ""
	}
	return p.String()
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
