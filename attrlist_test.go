package asciidoc

import "testing"

// TestParseAttrlist_NamedAndPositional verifies a mix of positional and
// named attributes, including a named attribute with a quoted value.
func TestParseAttrlist_NamedAndPositional(t *testing.T) {
	maw := ParseAttrlist(NewSpan(`Sunset,200,role="example"`))
	al := maw.Item

	if len(maw.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", maw.Warnings)
	}

	first, ok := al.NthAttribute(1)
	if !ok || first.Value.Data() != "Sunset" {
		t.Errorf("first positional = %q, ok=%v, want %q", first.Value.Data(), ok, "Sunset")
	}

	second, ok := al.NthAttribute(2)
	if !ok || second.Value.Data() != "200" {
		t.Errorf("second positional = %q, ok=%v, want %q", second.Value.Data(), ok, "200")
	}

	role, ok := al.NamedAttribute("role")
	if !ok || role.Value.Data() != "example" {
		t.Errorf("role = %q, ok=%v, want %q", role.Value.Data(), ok, "example")
	}
}

// TestParseAttrlist_QuotedValuePreservesInternalComma verifies that commas
// inside a quoted value do not split the attribute list, matching the
// `https://example.org["Google, DuckDuckGo, Ecosia",role=teal]` scenario.
func TestParseAttrlist_QuotedValuePreservesInternalComma(t *testing.T) {
	maw := ParseAttrlist(NewSpan(`"Google, DuckDuckGo, Ecosia",role=teal`))
	al := maw.Item

	first, ok := al.NthAttribute(1)
	if !ok {
		t.Fatal("expected a first positional attribute")
	}
	if first.Value.Data() != "Google, DuckDuckGo, Ecosia" {
		t.Errorf("first positional = %q, want %q", first.Value.Data(), "Google, DuckDuckGo, Ecosia")
	}

	roles := al.Roles()
	if len(roles) != 1 || roles[0] != "teal" {
		t.Errorf("Roles() = %v, want [teal]", roles)
	}
}

// TestParseAttrlist_EmptyValueWarning verifies a `,,` sequence is reported.
func TestParseAttrlist_EmptyValueWarning(t *testing.T) {
	maw := ParseAttrlist(NewSpan("a,,b"))

	found := false

	for _, w := range maw.Warnings {
		if w.Kind == WarningEmptyAttributeValue {
			found = true
		}
	}

	if !found {
		t.Errorf("expected a WarningEmptyAttributeValue, got %v", maw.Warnings)
	}
}

// TestAttrlist_ShorthandDecomposition verifies ID, Roles, Options, and
// BlockStyle extraction from the first positional attribute's shorthand.
func TestAttrlist_ShorthandDecomposition(t *testing.T) {
	maw := ParseAttrlist(NewSpan("quote#my-id.role-one.role-two%opt-one"))
	al := maw.Item

	id, ok := al.ID()
	if !ok || id != "my-id" {
		t.Errorf("ID() = %q, ok=%v, want %q", id, ok, "my-id")
	}

	roles := al.Roles()
	if len(roles) != 2 || roles[0] != "role-one" || roles[1] != "role-two" {
		t.Errorf("Roles() = %v, want [role-one role-two]", roles)
	}

	opts := al.Options()
	if len(opts) != 1 || opts[0] != "opt-one" {
		t.Errorf("Options() = %v, want [opt-one]", opts)
	}

	style, ok := al.BlockStyle()
	if !ok || style != "quote" {
		t.Errorf("BlockStyle() = %q, ok=%v, want %q", style, ok, "quote")
	}
}

// TestAttrlist_IDPrefersShorthandOverNamed verifies the shorthand `#id`
// takes precedence over a named `id=` attribute when both are present.
func TestAttrlist_IDPrefersShorthandOverNamed(t *testing.T) {
	maw := ParseAttrlist(NewSpan("#shorthand-id,id=named-id"))
	al := maw.Item

	id, ok := al.ID()
	if !ok || id != "shorthand-id" {
		t.Errorf("ID() = %q, ok=%v, want %q", id, ok, "shorthand-id")
	}
}

// TestAttrlist_QuotedValueEscapes verifies that an escaped quote inside a
// quoted value is unescaped rather than ending the value early.
func TestAttrlist_QuotedValueEscapes(t *testing.T) {
	maw := ParseAttrlist(NewSpan(`"she said \"hi\""`))
	al := maw.Item

	first, ok := al.NthAttribute(1)
	if !ok {
		t.Fatal("expected a first positional attribute")
	}
	if first.Value.Data() != `she said "hi"` {
		t.Errorf("value = %q, want %q", first.Value.Data(), `she said "hi"`)
	}
}

// TestAttrlist_RoleViaNamedAttributeSplitsOnWhitespace verifies role= with
// multiple space-separated tokens contributes multiple roles.
func TestAttrlist_RoleViaNamedAttributeSplitsOnWhitespace(t *testing.T) {
	maw := ParseAttrlist(NewSpan(`role="alpha beta"`))
	al := maw.Item

	roles := al.Roles()
	if len(roles) != 2 || roles[0] != "alpha" || roles[1] != "beta" {
		t.Errorf("Roles() = %v, want [alpha beta]", roles)
	}
}
