package vt510term

import "testing"

func drainTokens(tk *Tokenizer) []Token {
	var out []Token
	for {
		tok, ok := tk.Next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

func TestTokenizerPlainText(t *testing.T) {
	tk := NewTokenizer(0)
	tk.Write([]byte("hello"))

	toks := drainTokens(tk)
	if len(toks) != 1 || toks[0].Kind != TokenText || toks[0].Text != "hello" {
		t.Fatalf("got %+v, want single text token 'hello'", toks)
	}
}

func TestTokenizerControlInterruptsText(t *testing.T) {
	tk := NewTokenizer(0)
	tk.Write([]byte("ab\ncd"))

	toks := drainTokens(tk)
	want := []Token{
		{Kind: TokenText, Text: "ab"},
		{Kind: TokenControl, Control: cLF},
		{Kind: TokenText, Text: "cd"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %+v, want %d", len(toks), toks, len(want))
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokenizerCompleteCSI(t *testing.T) {
	tk := NewTokenizer(0)
	tk.Write([]byte("\x1b[31m"))

	toks := drainTokens(tk)
	if len(toks) != 1 || toks[0].Kind != TokenEscape || toks[0].Text != "\x1b[31m" {
		t.Fatalf("got %+v, want single escape token", toks)
	}
}

// TestTokenizerChunkIndependence is spec.md §8 invariant 1: splitting any
// input across two Write calls must yield the same tokens as one Write.
func TestTokenizerChunkIndependence(t *testing.T) {
	whole := NewTokenizer(0)
	whole.Write([]byte("hi\x1b[31mX"))
	wantToks := drainTokens(whole)

	split := NewTokenizer(0)
	split.Write([]byte("hi\x1b"))
	split.Write([]byte("[31mX"))
	gotToks := drainTokens(split)

	if len(gotToks) != len(wantToks) {
		t.Fatalf("got %d tokens %+v, want %d %+v", len(gotToks), gotToks, len(wantToks), wantToks)
	}
	for i := range wantToks {
		if gotToks[i] != wantToks[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, gotToks[i], wantToks[i])
		}
	}
}

func TestTokenizerIncompleteEscapeWaitsForMoreInput(t *testing.T) {
	tk := NewTokenizer(0)
	tk.Write([]byte("\x1b[31"))

	if _, ok := tk.Next(); ok {
		t.Fatalf("expected no token for an unterminated CSI sequence")
	}

	tk.Write([]byte("m"))
	tok, ok := tk.Next()
	if !ok || tok.Kind != TokenEscape || tok.Text != "\x1b[31m" {
		t.Fatalf("got (%+v, %v), want completed CSI token", tok, ok)
	}
}

func TestTokenizerMalformedSequenceGuardResyncs(t *testing.T) {
	tk := NewTokenizer(4)
	tk.Write([]byte("\x1b[123456789")) // never terminated CSI, exceeds the guard length

	tok, ok := tk.Next()
	if !ok || tok.Kind != TokenText {
		t.Fatalf("got (%+v, %v), want a flushed text token once the guard discards the runaway escape", tok, ok)
	}
	if tok.Text == "" || tok.Text[0] == cESC {
		t.Errorf("flushed token %q still starts with ESC; guard did not discard it", tok.Text)
	}

	if _, ok := tk.Next(); ok {
		t.Fatalf("expected buffer to be drained")
	}

	tk.Write([]byte("z"))
	tok, ok = tk.Next()
	if !ok || tok.Kind != TokenText || tok.Text != "z" {
		t.Fatalf("got (%+v, %v), want plain text token 'z' after resync", tok, ok)
	}
}
