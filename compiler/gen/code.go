package gen

import "fmt"

const deprecated = "/** @deprecated */"

// BuildCode returns the code fragments of an entity. The entity must carry
// the strings attached by BuildStrings. The returned fragments are meant to
// be appended to the entity code with Code.Merge.
func BuildCode(e *Entity, c *Config) Code {
	var code Code
	code.Append(BeforeType, beforeType(e)...)
	code.Append(AfterType, afterType(e)...)
	if len(e.Policies) == 0 {
		return code
	}
	code.Append(BeforeBase,
		"import createHttpError from 'http-errors';",
		fmt.Sprintf("import { Awaitable } from '%s';", c.API.BaseLibPackage),
	)
	code.Append(InsideBase, insideBase(e)...)
	code.Append(BeforeEntity, fmt.Sprintf("import { Awaitable } from '%s';", c.API.EntityLibPackage))
	code.Append(InsideEntity, insideEntity(e)...)
	return code
}

// beforeType is a reserved slot that stays empty for now.
func beforeType(*Entity) []string {
	return nil
}

// afterType returns the cursor and response envelope types of a
// presentable entity.
func afterType(e *Entity) []string {
	if !e.IsPresentable() {
		return nil
	}
	var (
		s     = e.API.Strings
		lines []string
	)
	add := func(l ...string) { lines = append(lines, l...) }
	deprecate := func(indent string, ok bool) {
		if ok {
			add(indent + deprecated)
		}
	}

	add("")
	deprecate("", e.Deprecated)
	add(fmt.Sprintf("export type %s = {", s.ManyCursor), "  count: number;")
	for _, f := range e.Fields {
		if f.Strings.MinVar != "" {
			deprecate("  ", f.Deprecated)
			add(fmt.Sprintf("  %s: %s | null;", f.Strings.MinVar, f.Strings.FieldResponseType))
		}
		if f.Strings.MaxVar != "" {
			deprecate("  ", f.Deprecated)
			add(fmt.Sprintf("  %s: %s | null;", f.Strings.MaxVar, f.Strings.FieldResponseType))
		}
	}
	add("};")

	add("")
	deprecate("", e.Deprecated)
	add(fmt.Sprintf("export type %s<S extends %s> = {", s.ManyResponse, e.Strings.FieldRequestClass))
	add(fmt.Sprintf("  cursor: %s;", s.ManyCursor))
	deprecate("  ", e.Deprecated)
	add(fmt.Sprintf("  %s: %s<S>[];", s.ManyEntsVar, e.Strings.SelectedResponseClass))
	add("};")

	add("")
	deprecate("", e.Deprecated)
	add(fmt.Sprintf("export type %s<S extends %s, N extends boolean = false> = {", s.OneResponse, e.Strings.FieldRequestClass))
	deprecate("  ", e.Deprecated)
	add(fmt.Sprintf("  %[1]s: N extends true ? (%[2]s<S> | null) : %[2]s<S>;", s.OneEntVar, e.Strings.SelectedResponseClass))
	add("};")
	return lines
}

// insideBase returns the checker and authorizer of every policy followed
// by the beforePresent hook that runs all checkers.
func insideBase(e *Entity) []string {
	var lines []string
	for _, p := range e.Policies {
		lines = append(lines, policyChecker(e, p)...)
		lines = append(lines, policyAuthorizer(p)...)
	}
	return append(lines, beforePresent(e)...)
}

// insideEntity returns the authorizers the hand-editable entity class
// has to override.
func insideEntity(e *Entity) []string {
	var lines []string
	for _, p := range e.Policies {
		lines = append(lines, policyAuthorizer(p)...)
	}
	return lines
}

func beforePresent(e *Entity) []string {
	lines := []string{
		"",
		fmt.Sprintf("protected async beforePresent<S extends %s>(fieldRequest: S): Promise<void> {", e.Strings.FieldRequestClass),
	}
	for _, p := range e.Policies {
		if p.FieldScoped() {
			lines = append(lines, fmt.Sprintf("  await this.check%sFields(fieldRequest);", titleCase(p.Name)))
		} else {
			lines = append(lines, fmt.Sprintf("  await this.check%s();", titleCase(p.Name)))
		}
	}
	return append(lines, "}")
}

// policyChecker returns the checker of a policy. A field-scoped checker
// only calls the authorizer if one of the protected fields is requested.
func policyChecker(e *Entity, p Policy) []string {
	title := titleCase(p.Name)
	if !p.FieldScoped() {
		return []string{
			"",
			fmt.Sprintf("protected async check%s(): Promise<void> {", title),
			fmt.Sprintf("  const isAuthorized = await this.authorize%s();", title),
			"  if (!isAuthorized) {",
			fmt.Sprintf("    const errorMessage = `Unauthorized access to %s`;", e.Name),
			"    throw createHttpError.Forbidden(errorMessage);",
			"  }",
			"}",
		}
	}
	list := camel(p.Name) + "Fields"
	lines := []string{"", fmt.Sprintf("protected %s = [", list)}
	for _, f := range p.Fields {
		lines = append(lines, fmt.Sprintf("  %s,", quote(f)))
	}
	return append(lines,
		"];",
		"",
		fmt.Sprintf("protected async check%sFields(fieldRequest: %s): Promise<void> {", title, e.Strings.FieldRequestClass),
		fmt.Sprintf("  const fields = Object.keys(fieldRequest).filter((key) => this.%s.includes(key));", list),
		"  if (fields.length === 0) {",
		"    return;",
		"  }",
		fmt.Sprintf("  const isAuthorized = await this.authorize%s();", title),
		"  if (!isAuthorized) {",
		fmt.Sprintf("    const errorMessage = `Unauthorized access to [${fields.map((field) => `'${field}'`).join(', ')}] on %s`;", e.Name),
		"    throw createHttpError.Forbidden(errorMessage);",
		"  }",
		"}",
	)
}

// policyAuthorizer returns the authorizer stub of a policy. It fails
// until the entity class overrides it.
func policyAuthorizer(p Policy) []string {
	return []string{
		"",
		fmt.Sprintf("protected authorize%s(): Awaitable<boolean> {", titleCase(p.Name)),
		"  throw new Error('not implemented');",
		"}",
	}
}
