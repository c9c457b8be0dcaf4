// Package astdumps renders parsed programs as generic trees for the dump and
// check commands.
package astdumps

import (
	"fmt"

	"github.com/reusee/kythera/kylang"
)

// Tree converts a node into maps, slices and scalars.
// Every node map has "kind" and "pos"; every value map has "type".
func Tree(node kylang.Node) any {
	if node == nil {
		return nil
	}

	ret := map[string]any{
		"pos": pos(node.Position()),
	}

	switch node := node.(type) {

	case *kylang.Binary:
		ret["kind"] = "Binary"
		ret["op"] = node.Op.String()
		ret["lhs"] = Tree(node.Lhs)
		ret["rhs"] = Tree(node.Rhs)

	case *kylang.Unary:
		ret["kind"] = "Unary"
		ret["op"] = node.Op.String()
		ret["operand"] = Tree(node.Operand)

	case *kylang.Call:
		ret["kind"] = "Call"
		ret["target"] = Tree(node.Target)
		ret["arguments"] = Trees(node.Arguments)

	case *kylang.Block:
		ret["kind"] = "Block"
		ret["body"] = Trees(node.Body)

	case *kylang.Literal:
		ret["kind"] = "Literal"
		ret["value"] = valueTree(node.Value)

	case *kylang.Declaration:
		ret["kind"] = "Declaration"
		ret["op"] = node.Op.String()
		ret["id"] = node.ID
		ret["value"] = Tree(node.Value)

	case *kylang.If:
		ret["kind"] = "If"
		ret["condition"] = Tree(node.Condition)
		ret["body"] = Tree(node.Body)
		if node.Else != nil {
			ret["else"] = Tree(node.Else)
		}

	case *kylang.While:
		ret["kind"] = "While"
		ret["condition"] = Tree(node.Condition)
		ret["body"] = Tree(node.Body)

	case *kylang.Jump:
		ret["kind"] = "Jump"
		ret["op"] = node.Op.String()
		ret["result"] = Tree(node.Result)

	case *kylang.Typeof:
		ret["kind"] = "Typeof"
		ret["operand"] = Tree(node.Operand)

	case *kylang.Identifier:
		ret["kind"] = "Identifier"
		ret["name"] = node.Name

	case *kylang.Access:
		ret["kind"] = "Access"
		ret["target"] = Tree(node.Target)
		ret["field"] = node.Field

	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}

	return ret
}

func Trees(nodes []kylang.Node) []any {
	ret := make([]any, 0, len(nodes))
	for _, node := range nodes {
		ret = append(ret, Tree(node))
	}
	return ret
}

func valueTree(value kylang.Value) any {
	switch value := value.(type) {

	case kylang.UnitValue:
		return map[string]any{
			"type": "Unit",
		}

	case kylang.IntValue:
		return map[string]any{
			"type":  "Int",
			"value": int(value),
		}

	case kylang.DoubleValue:
		return map[string]any{
			"type":  "Double",
			"value": float64(value),
		}

	case kylang.StringValue:
		return map[string]any{
			"type":  "String",
			"value": string(value),
		}

	case kylang.BoolValue:
		return map[string]any{
			"type":  "Bool",
			"value": bool(value),
		}

	case kylang.StructValue:
		return map[string]any{
			"type":   "Struct",
			"fields": fieldTrees(value),
		}

	case kylang.StructTypeValue:
		return map[string]any{
			"type":   "StructType",
			"fields": fieldTrees(value),
		}

	case *kylang.FnValue:
		params := make([]any, 0, len(value.ParamNames))
		for i, name := range value.ParamNames {
			param := map[string]any{
				"name": name,
			}
			if i < len(value.ParamTypes) {
				param["type"] = Tree(value.ParamTypes[i])
			}
			params = append(params, param)
		}
		return map[string]any{
			"type":   "Fn",
			"params": params,
			"body":   Tree(value.Body),
		}

	case *kylang.FnTypeValue:
		return map[string]any{
			"type":    "FnType",
			"params":  Trees(value.ParamTypes),
			"returns": Tree(value.Returns),
		}

	}

	panic(fmt.Errorf("unknown value type %T", value))
}

func fieldTrees(fields map[string]kylang.Node) map[string]any {
	ret := make(map[string]any, len(fields))
	for name, node := range fields {
		ret[name] = Tree(node)
	}
	return ret
}

func pos(p kylang.Pos) string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
