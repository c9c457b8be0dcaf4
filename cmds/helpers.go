package cmds

// Var defines `name <value>` to set the returned value and `name.` to reset it.
func Var[T any](name string) *T {
	return VarOn[T](GlobalExecutor, name)
}

func VarOn[T any](executor *Executor, name string) *T {
	var value T

	executor.Define(name, Func(func(v T) {
		value = v
	}).Args("value"))

	var zero T
	executor.Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines `name` to turn the returned flag on and `!name` to turn it off.
func Switch(name string) *bool {
	return SwitchOn(GlobalExecutor, name)
}

func SwitchOn(executor *Executor, name string) *bool {
	var value bool

	executor.Define(name, Func(func() {
		value = true
	}))

	executor.Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines `name <value>`, appending on every use.
func Collect[T any](name string) *[]T {
	var value []T
	GlobalExecutor.Define(name, Func(func(v T) {
		value = append(value, v)
	}).Args("value"))
	return &value
}
