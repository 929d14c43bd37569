package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegex        Code = 1006

	// Конфигурация
	CfgInfo         Code = 5000
	CfgDecodeError  Code = 5001
	CfgInvalidValue Code = 5002
	CfgUnknownKey   Code = 5003

	// Отступы
	IndentInfo      Code = 6000
	IndentMismatch  Code = 6001
	IndentQueryFail Code = 6002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexInfo:                     "lexical information",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",
	LexUnterminatedTemplate:     "unterminated template literal",
	LexUnterminatedRegex:        "unterminated regular expression",
	CfgInfo:                     "configuration information",
	CfgDecodeError:              "cannot decode configuration file",
	CfgInvalidValue:             "invalid configuration value",
	CfgUnknownKey:               "unknown configuration key",
	IndentInfo:                  "indentation information",
	IndentMismatch:              "line is not indented as computed",
	IndentQueryFail:             "indentation could not be computed",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("IND%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
