package kylang

import "fmt"

type Keyword uint8

const (
	KwInvalid Keyword = iota
	KwConst
	KwLet
	KwIf
	KwElse
	KwWhile
	KwWhen
	KwBreak
	KwReturn
	KwContinue
	KwTypeof
	KwImport
	KwExport

	numKeywords
)

var keywordNames = [numKeywords]struct {
	name string
	text string
}{
	KwInvalid:  {"Invalid", ""},
	KwConst:    {"Const", "const"},
	KwLet:      {"Let", "let"},
	KwIf:       {"If", "if"},
	KwElse:     {"Else", "else"},
	KwWhile:    {"While", "while"},
	KwWhen:     {"When", "when"},
	KwBreak:    {"Break", "break"},
	KwReturn:   {"Return", "return"},
	KwContinue: {"Continue", "continue"},
	KwTypeof:   {"Typeof", "typeof"},
	KwImport:   {"Import", "import"},
	KwExport:   {"Export", "export"},
}

func (k Keyword) String() string {
	if k >= numKeywords {
		return fmt.Sprintf("Keyword(%d)", uint8(k))
	}
	return keywordNames[k].name
}

func (k Keyword) Text() string {
	if k >= numKeywords {
		return ""
	}
	return keywordNames[k].text
}

var keywords = func() map[string]Keyword {
	ret := make(map[string]Keyword, numKeywords)
	for k := KwConst; k < numKeywords; k++ {
		ret[keywordNames[k].text] = k
	}
	return ret
}()
