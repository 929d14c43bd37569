// Package fuzztests houses Go fuzz harnesses for the text pipeline
// (source -> lexer -> indent engine). They guard against panics and broken
// invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер и движок
// отступов и проверять инварианты потока токенов и результата.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
