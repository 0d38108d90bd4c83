/*
Package vartmpl compiles variable templates and runs them in both directions:
formatting (substitute values into placeholders) and extraction (recover the
placeholder values from a string that matches the template's literal shape).

# Overview

A template is a string with named placeholders in a configurable syntax,
such as "${name}" or "{name}". Compile parses it once into an immutable
Template of alternating literal and placeholder segments. The same Template
then serves any number of Format and Extract calls, concurrently.

Extraction is the interesting direction: placeholder spans have unknown
length, so the literal segments act as anchors. The matcher locates each
literal at its leftmost valid position and assigns everything between
consecutive anchors to the placeholder separating them.

# Basic Usage

Compile against a built-in syntax, then format or extract:

	tmpl, err := vartmpl.Compile("Hi ${name}!", vartmpl.DollarBrace)
	if err != nil {
	    log.Fatal(err)
	}

	out, err := tmpl.Format(map[string]string{"name": "mom"})
	// out: "Hi mom!"

	vals, err := tmpl.Extract("Hi mom!")
	// vals: map[name:mom]

# Syntaxes

Three syntaxes are built in:

  - ClassicBrace: {name}, identifier names
  - DollarBrace:  ${name}, identifier names
  - Permissive:   ${name}, names may contain spaces and start with digits

Custom syntaxes are plain Syntax values; see also RegisterSyntax and the
config subpackage for file-driven syntax definitions.

# Matching Policy

Extract is deterministic and never backtracks. The leading literal must be
an exact prefix of the input. Each placeholder takes the shortest non-empty
span such that the next literal matches immediately after it (the leftmost
valid split). A trailing placeholder consumes the rest of the input. Every
placeholder captures at least one character, the whole input must be
consumed, and a name appearing twice must capture identical spans;
otherwise Extract fails with a NoMatchError.

# Engine

Engine binds a syntax to a compiled-template cache and optional behavior
(keep missing values, reject unused values, ambiguity checking) plus
logging, metrics and tracing:

	eng := vartmpl.New(vartmpl.DollarBrace,
	    vartmpl.WithUnusedCheck(true),
	    vartmpl.WithLogger(logger),
	)

	out, err := eng.Format(ctx, "archive-${date}.tar.gz", map[string]string{
	    "date": "1970-01-01",
	})

# Thread Safety

Syntax and Template are immutable after construction and safe for
unsynchronized concurrent use. Engine is safe for concurrent use; only its
cache mutates, behind a lock. All operations are pure: no I/O, no shared
side effects, output maps are owned by the caller.
*/
package vartmpl
