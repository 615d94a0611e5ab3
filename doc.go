// s-expressions parser (symbols, strings, integers, floats)
//
// the parser makes a single pass over the input, tokenizing and building lists
// at the same time. open lists are kept on an explicit stack rather than on the
// call stack, so nesting depth is only limited by memory.
//
// restrictions of the format:
//   1. strings have no escapes. a '"' always ends a string, so a string can
//      never contain one.
//   2. numbers are unsigned decimal; no sign, no exponent.
//   3. a symbol runs until whitespace or end of input. it does not stop at
//      '(' or ')', so "(a b)" reads the symbol "b)" and fails with
//      ErrExpectedClosingParen. write "(a b )" instead.
//   4. only the 7-bit ASCII characters below have special meaning. all other
//      characters are passed through verbatim.
//
// examples:
//
//   (+ 1 (- 2 3))
//   (define last-name "hello there stranger" 78435.67768 )
//
// when the input holds exactly one expression, Parse returns it directly.
// otherwise the top-level expressions are wrapped in a list; empty input gives
// the empty list.
//
// BNF:
//  <input>           :: <whitespace> ( <sexpr> <whitespace> )* ;
//
//  <sexpr>           :: <list> | <string> | <number> | <symbol> ;
//
//  <list>            :: "(" <whitespace> ( <sexpr> <whitespace> )* ")" ;
//
//  <string>          :: "\"" <string-char>* "\"" ;
//  <string-char>     :: <any char except "\""> ;
//
//  <number>          :: <integer> | <float> ;
//  <integer>         :: <decimal-digit>+ ;
//  <float>           :: <decimal-digit>+ "." <decimal-digit>* ;
//  <decimal-digit>   :: "0" | ... | "9" ;
//
//  <symbol>          :: <symbol-start> <symbol-char>* ;
//  <symbol-start>    :: <any char except whitespace, "(", ")", "\"", decimal-digit> ;
//  <symbol-char>     :: <any char except whitespace> ;
//
//  <whitespace>      :: <whitespace-char>* ;
//  <whitespace-char> :: " " | "\t" | "\n" | "\f" | "\r" ;

package sexpr
