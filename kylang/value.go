package kylang

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Value is the payload of a Literal node.
type Value interface {
	String() string
	value()
}

type UnitValue struct{}

type IntValue int32

type DoubleValue float64

type StringValue string

type BoolValue bool

// StructValue maps field names to value expressions.
type StructValue map[string]Node

// StructTypeValue maps field names to type expressions.
type StructTypeValue map[string]Node

type FnValue struct {
	ParamNames []string
	// parallel to ParamNames; nil for a parameterless function
	ParamTypes []Node
	Body       *Block
}

// FnTypeValue is part of the tree model; function type literals are not parsed yet.
type FnTypeValue struct {
	ParamTypes []Node
	Returns    Node
}

var (
	_ Value = UnitValue{}
	_ Value = IntValue(0)
	_ Value = DoubleValue(0)
	_ Value = StringValue("")
	_ Value = BoolValue(false)
	_ Value = StructValue(nil)
	_ Value = StructTypeValue(nil)
	_ Value = new(FnValue)
	_ Value = new(FnTypeValue)
)

func (UnitValue) value()       {}
func (IntValue) value()        {}
func (DoubleValue) value()     {}
func (StringValue) value()     {}
func (BoolValue) value()       {}
func (StructValue) value()     {}
func (StructTypeValue) value() {}
func (*FnValue) value()        {}
func (*FnTypeValue) value()    {}

func (UnitValue) String() string {
	return "Unit"
}

func (v IntValue) String() string {
	return "Int(" + strconv.FormatInt(int64(v), 10) + ")"
}

func (v DoubleValue) String() string {
	return "Double(" + formatDouble(float64(v)) + ")"
}

func (v StringValue) String() string {
	return "String(" + strconv.Quote(string(v)) + ")"
}

func (v BoolValue) String() string {
	return "Bool(" + strconv.FormatBool(bool(v)) + ")"
}

func (v StructValue) String() string {
	return "Struct(" + fieldMap(v) + ")"
}

func (v StructTypeValue) String() string {
	return "StructType(" + fieldMap(v) + ")"
}

func (v *FnValue) String() string {
	var sb strings.Builder
	sb.WriteString("Fn([")
	for i, name := range v.ParamNames {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		if i < len(v.ParamTypes) {
			sb.WriteString(": ")
			sb.WriteString(v.ParamTypes[i].String())
		}
	}
	sb.WriteString("], ")
	sb.WriteString(v.Body.String())
	sb.WriteString(")")
	return sb.String()
}

func (v *FnTypeValue) String() string {
	return "FnType(" + nodeList(v.ParamTypes) + ", " + v.Returns.String() + ")"
}

// keys sorted for stable output
func fieldMap(fields map[string]Node) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range slices.Sorted(maps.Keys(fields)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(fields[name].String())
	}
	sb.WriteString("}")
	return sb.String()
}
