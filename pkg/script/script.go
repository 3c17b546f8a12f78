// Package script defines the request and response documents the lifo driver
// speaks on stdin and stdout.
package script

type Op string

const (
	OpNew     Op = "new"
	OpPush    Op = "push"
	OpEmplace Op = "emplace"
	OpPop     Op = "pop"
	OpTop     Op = "top"
	OpSize    Op = "size"
	OpEmpty   Op = "empty"
	OpSwap    Op = "swap"
	OpCopy    Op = "copy"
	OpMove    Op = "move"
	OpCompare Op = "compare"
)

type Request struct {
	Version string   `json:"version"`
	Backend string   `json:"backend,omitempty"`
	Scripts []Script `json:"scripts"`
}

type Script struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

type Step struct {
	Op     Op     `json:"op"`
	Stack  string `json:"stack"`
	Other  string `json:"other,omitempty"`
	Value  *int   `json:"value,omitempty"`
	Values []int  `json:"values,omitempty"` // bottom to top, for new
}

type Response struct {
	Results []Result `json:"results"`
}

type Result struct {
	Name    string   `json:"name"`
	Outputs []Output `json:"outputs,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type Output struct {
	Step  int    `json:"step"`
	Op    Op     `json:"op"`
	Value *int   `json:"value,omitempty"`
	Size  *int   `json:"size,omitempty"`
	Empty *bool  `json:"empty,omitempty"`
	Order *int   `json:"order,omitempty"`
	Equal *bool  `json:"equal,omitempty"`
	Error string `json:"error,omitempty"`
}
