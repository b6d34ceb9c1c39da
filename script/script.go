// Package script runs tengo macros against a room. A script sees a global
// `room` object:
//
//	room.set_tile(x, y, shape)          shape code 1..5
//	room.remove_tile(x, y)
//	room.tile(x, y)                     shape code, 0 for void
//	room.toggle_wall(x, y, edge)        "ne", "se", "sw", "nw", "diag_sw_ne", "diag_nw_se"
//	room.has_wall(x, y, edge)
//	room.toggle_walkable(x, y)
//	room.paint_layer(x, y, layer)       "background", "main", "foreground", "wall"
//	room.add_decoration(base, variant, x, y, rotation, layer)
//	room.log(args...)
//
// Mutators return false when the room refuses the change.
package script

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/room"
)

// Run executes src against r and re-derives the Wall layer afterwards.
func Run(r *room.Room, src []byte) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("room", roomObject(r)); err != nil {
		return fmt.Errorf("script: bind room: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("script: compile: %w", err)
	}
	runErr := compiled.Run()
	r.RecomputeWallLayer()
	if runErr != nil {
		return fmt.Errorf("script: run: %w", runErr)
	}
	return nil
}

// RunFile reads and runs a script file.
func RunFile(r *room.Room, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: read %s: %w", path, err)
	}
	if err := Run(r, src); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func roomObject(r *room.Room) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["set_tile"] = &tengo.UserFunction{Name: "set_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		c, err := cellArg(args, 0)
		if err != nil {
			return nil, err
		}
		code, err := intArg(args, 2, "shape")
		if err != nil {
			return nil, err
		}
		return boolObject(r.SetTile(c, room.Shape(code)) == nil), nil
	}}

	values["remove_tile"] = &tengo.UserFunction{Name: "remove_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		c, err := cellArg(args, 0)
		if err != nil {
			return nil, err
		}
		return boolObject(r.RemoveTile(c)), nil
	}}

	values["tile"] = &tengo.UserFunction{Name: "tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		c, err := cellArg(args, 0)
		if err != nil {
			return nil, err
		}
		return &tengo.Int{Value: int64(r.Tile(c))}, nil
	}}

	values["toggle_wall"] = &tengo.UserFunction{Name: "toggle_wall", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, e, err := wallArgs(args)
		if err != nil {
			return nil, err
		}
		return boolObject(r.ToggleWall(c, e)), nil
	}}

	values["has_wall"] = &tengo.UserFunction{Name: "has_wall", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, e, err := wallArgs(args)
		if err != nil {
			return nil, err
		}
		return boolObject(r.HasWall(c, e)), nil
	}}

	values["toggle_walkable"] = &tengo.UserFunction{Name: "toggle_walkable", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		c, err := cellArg(args, 0)
		if err != nil {
			return nil, err
		}
		if !r.HasTile(c) {
			return tengo.FalseValue, nil
		}
		return boolObject(r.ToggleWalkable(c)), nil
	}}

	values["paint_layer"] = &tengo.UserFunction{Name: "paint_layer", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		c, err := cellArg(args, 0)
		if err != nil {
			return nil, err
		}
		l, err := layerArg(args, 2)
		if err != nil {
			return nil, err
		}
		return boolObject(r.PaintLayer(c, l) == nil), nil
	}}

	values["add_decoration"] = &tengo.UserFunction{Name: "add_decoration", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 6 {
			return nil, tengo.ErrWrongNumArguments
		}
		base, err := stringArg(args, 0, "base")
		if err != nil {
			return nil, err
		}
		variant, err := stringArg(args, 1, "variant")
		if err != nil {
			return nil, err
		}
		c, err := cellArg(args, 2)
		if err != nil {
			return nil, err
		}
		rot, err := intArg(args, 4, "rotation")
		if err != nil {
			return nil, err
		}
		l, err := layerArg(args, 5)
		if err != nil {
			return nil, err
		}
		if l == room.LayerWall {
			return tengo.FalseValue, nil
		}
		_, ok := r.AddDecoration(base, variant, c, rot, l)
		return boolObject(ok), nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Printf("script: %s", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func intArg(args []tengo.Object, i int, name string) (int, error) {
	v, ok := tengo.ToInt(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "int", Found: args[i].TypeName()}
	}
	return v, nil
}

func stringArg(args []tengo.Object, i int, name string) (string, error) {
	s, ok := args[i].(*tengo.String)
	if !ok {
		return "", tengo.ErrInvalidArgumentType{Name: name, Expected: "string", Found: args[i].TypeName()}
	}
	return s.Value, nil
}

func cellArg(args []tengo.Object, i int) (iso.Cell, error) {
	x, err := intArg(args, i, "x")
	if err != nil {
		return iso.Cell{}, err
	}
	y, err := intArg(args, i+1, "y")
	if err != nil {
		return iso.Cell{}, err
	}
	return iso.Cell{X: x, Y: y}, nil
}

func wallArgs(args []tengo.Object) (iso.Cell, room.Edge, error) {
	if len(args) != 3 {
		return iso.Cell{}, 0, tengo.ErrWrongNumArguments
	}
	c, err := cellArg(args, 0)
	if err != nil {
		return iso.Cell{}, 0, err
	}
	name, err := stringArg(args, 2, "edge")
	if err != nil {
		return iso.Cell{}, 0, err
	}
	e, err := room.ParseEdge(name)
	if err != nil {
		return iso.Cell{}, 0, err
	}
	return c, e, nil
}

func layerArg(args []tengo.Object, i int) (room.Layer, error) {
	name, err := stringArg(args, i, "layer")
	if err != nil {
		return 0, err
	}
	for _, l := range room.Layers {
		if strings.EqualFold(l.String(), name) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
