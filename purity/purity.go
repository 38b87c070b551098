// Package purity checks statically that a function has no side effects and
// depends on nothing but its arguments.
//
// A function is impure when it touches package-level variables, writes
// through a parameter or a captured variable, updates a map it did not make,
// calls into another package or through a function value, or uses goroutines,
// defer or channels.
package purity

import (
	"fmt"
	"go/token"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
)

// Error reports the instruction that makes a function impure.
type Error struct {
	// Func is the function containing the instruction.
	Func string
	// Pos is the position of the instruction, if known.
	Pos token.Position
	// Reason describes the violation.
	Reason string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s is impure: %s", e.Pos, e.Func, e.Reason)
	}
	return fmt.Sprintf("%s is impure: %s", e.Func, e.Reason)
}

// Check reports whether the function funcName in pkg is pure.
// Functions of the same package called statically are checked as well.
func Check(pkg *ssa.Package, funcName string) error {
	fn := pkg.Func(funcName)
	if fn == nil {
		return errors.Errorf("function %s does not exist in package %s", funcName, pkg.Pkg.Path())
	}
	c := &checker{pkg: pkg, visited: make(map[*ssa.Function]bool)}
	return c.check(fn)
}

type checker struct {
	pkg     *ssa.Package
	visited map[*ssa.Function]bool
}

func (c *checker) check(fn *ssa.Function) error {
	if c.visited[fn] {
		return nil
	}
	c.visited[fn] = true

	if fn.Blocks == nil {
		return c.errorf(fn, nil, "has no body")
	}

	for _, block := range fn.Blocks {
		for _, instr := range block.Instrs {
			if err := c.checkInstr(fn, instr); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *checker) checkInstr(fn *ssa.Function, instr ssa.Instruction) error {
	switch instr := instr.(type) {
	case *ssa.Store:
		switch v := base(instr.Addr).(type) {
		case *ssa.Global:
			return c.errorf(fn, instr, "writes package-level variable %s", v.Name())
		case *ssa.Parameter:
			return c.errorf(fn, instr, "writes through parameter %s", v.Name())
		case *ssa.FreeVar:
			return c.errorf(fn, instr, "writes captured variable %s", v.Name())
		}
	case *ssa.MapUpdate:
		// Only maps made by the function itself may be updated.
		if _, ok := instr.Map.(*ssa.MakeMap); !ok {
			return c.errorf(fn, instr, "updates map %s it did not create", instr.Map.Name())
		}
	case *ssa.UnOp:
		switch instr.Op {
		case token.MUL:
			if g, ok := base(instr.X).(*ssa.Global); ok {
				return c.errorf(fn, instr, "reads package-level variable %s", g.Name())
			}
		case token.ARROW:
			return c.errorf(fn, instr, "receives from a channel")
		}
	case *ssa.Send:
		return c.errorf(fn, instr, "sends to a channel")
	case *ssa.Select:
		return c.errorf(fn, instr, "selects on channels")
	case *ssa.Go:
		return c.errorf(fn, instr, "starts a goroutine")
	case *ssa.Defer:
		return c.errorf(fn, instr, "defers a call")
	case *ssa.Call:
		return c.checkCall(fn, instr)
	}
	return nil
}

func (c *checker) checkCall(fn *ssa.Function, call *ssa.Call) error {
	common := call.Common()
	if _, ok := common.Value.(*ssa.Builtin); ok {
		return nil
	}
	callee := common.StaticCallee()
	if callee == nil {
		return c.errorf(fn, call, "makes a dynamic call")
	}
	if callee.Pkg != c.pkg {
		return c.errorf(fn, call, "calls %s", callee.String())
	}
	return c.check(callee)
}

func (c *checker) errorf(fn *ssa.Function, instr ssa.Instruction, format string, args ...interface{}) error {
	pos := fn.Pos()
	if instr != nil && instr.Pos().IsValid() {
		pos = instr.Pos()
	}
	return &Error{
		Func:   fn.Name(),
		Pos:    fn.Prog.Fset.Position(pos),
		Reason: fmt.Sprintf(format, args...),
	}
}

// base returns the value addr is derived from by field and element selection.
func base(addr ssa.Value) ssa.Value {
	for {
		switch v := addr.(type) {
		case *ssa.FieldAddr:
			addr = v.X
		case *ssa.IndexAddr:
			addr = v.X
		default:
			return addr
		}
	}
}
