package pathrx

import "testing"

func TestCompile_AndEval(t *testing.T) {
	p, err := Compile("users.[*].name")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	doc, err := ParseJSON([]byte(`{"users":[{"name":"Alice"},{"name":"Bob"}]}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	matches := p.Eval(doc)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
}

func TestCompile_ParseError(t *testing.T) {
	if _, err := Compile("("); err == nil {
		t.Fatalf("expected a parse error for an unmatched paren")
	}
}

func TestMustCompile_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustCompile to panic on a bad query")
		}
	}()
	MustCompile("(")
}

func TestEngine_Compile(t *testing.T) {
	e := New()
	p, err := e.Compile("a.b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	doc, _ := ParseJSON([]byte(`{"a":{"b":1}}`))
	if len(p.Eval(doc)) != 1 {
		t.Fatalf("expected 1 match")
	}
}

func TestFixedString_MatchesAtAnyDepth(t *testing.T) {
	p := CompileQuery(FixedString("id"))
	doc, _ := ParseJSON([]byte(`{"id":1,"nested":{"id":2,"deeper":[{"id":3}]}}`))
	matches := p.Eval(doc)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
}

func TestEngine_CompileFixedString(t *testing.T) {
	e := New()
	p := e.CompileFixedString("x")
	doc, _ := ParseJSON([]byte(`{"a":{"x":5}}`))
	matches := p.Eval(doc)
	if len(matches) != 1 || matches[0].Value.Number() != 5 {
		t.Fatalf("got %+v", matches)
	}
}

func TestEvalWithMaxDepth(t *testing.T) {
	p := MustCompile("**.leaf")
	doc, _ := ParseJSON([]byte(`{"a":{"b":{"leaf":1}}}`))
	if matches := p.EvalWithMaxDepth(doc, 1); len(matches) != 0 {
		t.Fatalf("expected depth cap to prevent reaching leaf, got %d matches", len(matches))
	}
	if matches := p.Eval(doc); len(matches) != 1 {
		t.Fatalf("expected unbounded eval to find the leaf, got %d matches", len(matches))
	}
}

func TestMustParse_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustParse to panic on a bad query")
		}
	}()
	MustParse("[")
}

func TestProgram_Query(t *testing.T) {
	p := MustCompile("a.b")
	if p.Query() == nil {
		t.Fatalf("expected Query() to return the compiled AST")
	}
}
