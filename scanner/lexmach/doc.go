/*
Package lexmach provides an adapter to use lexmachine as a tokenizer for the
chart parser.

Lexmachine (https://github.com/timtadh/lexmachine) compiles regular-
expression lexers into a DFA. The adapter wires such a lexer into the
scanner.Tokenizer interface, renumbering the emitted tokens with consecutive
token indices as the parser requires.

Typical usage:

    adapter, err := lexmach.NewLMAdapter(nil,
        []string{",", "."},
        []string{"der", "die", "das"},
        tokenIds)
    tz, err := adapter.Scanner("der hund kommt")
    terminals := scanner.Drain(tz)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package lexmach
