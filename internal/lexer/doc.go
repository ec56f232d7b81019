// Package lexer defines the narrow interfaces a tokenizer/folder plugged
// into a Document is expected to satisfy, and the Accessor the document
// hands it to read text and styles and write styles and fold state back.
// No concrete lexers live here; this package only describes the contract
// Document.Colourise drives against.
package lexer
