package debugs

import (
	"reflect"

	"github.com/reusee/kythera/kylang"
)

// Walk calls fn on node and all nodes below it, parents first.
func Walk(node kylang.Node, fn func(kylang.Node)) {
	if node == nil {
		return
	}
	fn(node)

	switch node := node.(type) {
	case *kylang.Binary:
		Walk(node.Lhs, fn)
		Walk(node.Rhs, fn)
	case *kylang.Unary:
		Walk(node.Operand, fn)
	case *kylang.Call:
		Walk(node.Target, fn)
		for _, arg := range node.Arguments {
			Walk(arg, fn)
		}
	case *kylang.Block:
		for _, stmt := range node.Body {
			Walk(stmt, fn)
		}
	case *kylang.Literal:
		walkValue(node.Value, fn)
	case *kylang.Declaration:
		Walk(node.Value, fn)
	case *kylang.If:
		Walk(node.Condition, fn)
		Walk(node.Body, fn)
		Walk(node.Else, fn)
	case *kylang.While:
		Walk(node.Condition, fn)
		Walk(node.Body, fn)
	case *kylang.Jump:
		Walk(node.Result, fn)
	case *kylang.Typeof:
		Walk(node.Operand, fn)
	case *kylang.Access:
		Walk(node.Target, fn)
	}
}

func walkValue(value kylang.Value, fn func(kylang.Node)) {
	switch value := value.(type) {
	case kylang.StructValue:
		for _, node := range value {
			Walk(node, fn)
		}
	case kylang.StructTypeValue:
		for _, node := range value {
			Walk(node, fn)
		}
	case *kylang.FnValue:
		for _, typ := range value.ParamTypes {
			Walk(typ, fn)
		}
		Walk(value.Body, fn)
	case *kylang.FnTypeValue:
		for _, typ := range value.ParamTypes {
			Walk(typ, fn)
		}
		Walk(value.Returns, fn)
	}
}

// kindOf is the node type name, "Binary" for *kylang.Binary.
func kindOf(node kylang.Node) string {
	return reflect.TypeOf(node).Elem().Name()
}
