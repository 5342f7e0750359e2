package asciidoc

import "testing"

// TestRenderSubstitutions_AttributeFixpoint verifies that an attribute
// reference whose own value contains another reference is fully expanded:
// `:attr: abc{sp}def` followed by `Goodbye {attr} hello` must render as
// `Goodbye abc def hello`, not leave a literal `{sp}` behind.
func TestRenderSubstitutions_AttributeFixpoint(t *testing.T) {
	p := NewParser(WithInitialAttributes(map[string]string{"attr": "abc{sp}def"}))

	got := RenderSubstitutions(NewSpan("Goodbye {attr} hello"), SubstitutionNormal, p)
	want := "Goodbye abc def hello"

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_AttributeFixpointIsBounded verifies that a cyclic
// pair of attribute definitions does not hang the substitution pass: the
// fixpoint loop must stop after a bounded number of iterations even when it
// never converges.
func TestRenderSubstitutions_AttributeFixpointIsBounded(t *testing.T) {
	p := NewParser(WithInitialAttributes(map[string]string{
		"a": "{b}",
		"b": "{a}",
	}))

	// Must return promptly; a previous implementation that looped the
	// attributes pass without a bound would spin forever on this input.
	_ = RenderSubstitutions(NewSpan("{a}"), SubstitutionNormal, p)
}

// TestRenderSubstitutions_EscapedAttributeReferenceStaysLiteral verifies a
// backslash-escaped reference is left as literal text and is not expanded
// even once unescaped by a later fixpoint pass.
func TestRenderSubstitutions_EscapedAttributeReferenceStaysLiteral(t *testing.T) {
	p := NewParser(WithInitialAttributes(map[string]string{"attr": "value"}))

	got := RenderSubstitutions(NewSpan(`Goodbye \{attr} hello`), SubstitutionNormal, p)
	want := "Goodbye {attr} hello"

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_UnresolvedAttributeLeftVerbatim verifies a
// reference to an attribute that was never set is left untouched.
func TestRenderSubstitutions_UnresolvedAttributeLeftVerbatim(t *testing.T) {
	p := NewParser()

	got := RenderSubstitutions(NewSpan("Hello {nope}"), SubstitutionNormal, p)
	want := "Hello {nope}"

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_AutolinkWithQuotedTextAndRole verifies the seed
// scenario: `https://example.org["Google, DuckDuckGo, Ecosia",role=teal]`
// renders with the quotes stripped from the visible text and the role
// applied as a CSS class.
func TestRenderSubstitutions_AutolinkWithQuotedTextAndRole(t *testing.T) {
	p := NewParser()

	got := RenderSubstitutions(
		NewSpan(`https://example.org["Google, DuckDuckGo, Ecosia",role=teal]`),
		SubstitutionNormal, p,
	)
	want := `<a href="https://example.org" class="teal">Google, DuckDuckGo, Ecosia</a>`

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_AutolinkWithoutBracket verifies a bare autolink
// with no bracket body still renders, using the URL itself as the text.
func TestRenderSubstitutions_AutolinkWithoutBracket(t *testing.T) {
	p := NewParser()

	got := RenderSubstitutions(NewSpan("See https://example.org for details"), SubstitutionNormal, p)
	want := `See <a href="https://example.org">https://example.org</a> for details`

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_LinkMacroWithRole verifies the link: macro parses
// its bracket body as an attribute list the same way the autolink form does.
func TestRenderSubstitutions_LinkMacroWithRole(t *testing.T) {
	p := NewParser()

	got := RenderSubstitutions(NewSpan(`link:https://example.org[Example,role=teal]`), SubstitutionNormal, p)
	want := `<a href="https://example.org" class="teal">Example</a>`

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_ImageMacroWithRole verifies the image: macro's
// alt text and role are parsed from its bracket body.
func TestRenderSubstitutions_ImageMacroWithRole(t *testing.T) {
	p := NewParser()

	got := RenderSubstitutions(NewSpan(`image:sunset.jpg[Sunset,role=thumb]`), SubstitutionNormal, p)
	want := `<img src="sunset.jpg" alt="Sunset" class="thumb">`

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_VerbatimGroupOnlyEscapesSpecialChars verifies the
// verbatim group (listing/literal/source blocks) applies only the special
// characters pass: no quotes, attributes, replacements, or macros run.
func TestRenderSubstitutions_VerbatimGroupOnlyEscapesSpecialChars(t *testing.T) {
	p := NewParser(WithInitialAttributes(map[string]string{"x": "y"}))

	input := `*bold* {x} <tag> & "quoted" https://example.org`
	got := RenderSubstitutions(NewSpan(input), SubstitutionVerbatim, p)
	want := `*bold* {x} &lt;tag&gt; &amp; "quoted" https://example.org`

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestRenderSubstitutions_NoneGroupIsIdentity verifies the none group
// (comment/pass blocks) leaves content completely untouched.
func TestRenderSubstitutions_NoneGroupIsIdentity(t *testing.T) {
	p := NewParser()

	input := `*bold* {x} <tag> & https://example.org`
	got := RenderSubstitutions(NewSpan(input), SubstitutionNone, p)

	if got != input {
		t.Errorf("RenderSubstitutions = %q, want identity %q", got, input)
	}
}

// TestRenderSubstitutions_PassthroughSurvivesLaterPasses verifies that a
// `pass:[...]` macro's content is protected from every other pass,
// including a later macro that would otherwise match inside it.
func TestRenderSubstitutions_PassthroughSurvivesLaterPasses(t *testing.T) {
	p := NewParser()

	got := RenderSubstitutions(NewSpan(`pass:[*not bold* {nope}]`), SubstitutionNormal, p)
	want := `*not bold* {nope}`

	if got != want {
		t.Errorf("RenderSubstitutions = %q, want %q", got, want)
	}
}

// TestResolveSubsOverride_SetAddRemove verifies the subs= grammar: a bare
// group name replaces the base group, `+name` adds a pass without
// duplicating it, and `-name` removes one.
func TestResolveSubsOverride_SetAddRemove(t *testing.T) {
	tests := []struct {
		name  string
		base  SubstitutionGroup
		value string
		want  SubstitutionGroup
	}{
		{
			name:  "empty override keeps base",
			base:  SubstitutionNormal,
			value: "",
			want:  SubstitutionNormal,
		},
		{
			name:  "bare name replaces base",
			base:  SubstitutionNormal,
			value: "verbatim",
			want:  SubstitutionVerbatim,
		},
		{
			name:  "add appends a missing pass once",
			base:  SubstitutionVerbatim,
			value: "+attributes",
			want:  SubstitutionGroup{SubSpecialCharacters, SubAttributes},
		},
		{
			name:  "add is a no-op when already present",
			base:  SubstitutionNormal,
			value: "+quotes",
			want:  SubstitutionNormal,
		},
		{
			name:  "remove drops a pass",
			base:  SubstitutionNormal,
			value: "-macros",
			want: SubstitutionGroup{
				SubSpecialCharacters, SubQuotes, SubAttributes, SubReplacements, SubPostReplacements,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSubsOverride(tt.base, tt.value)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveSubsOverride() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ResolveSubsOverride()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
