/*
Package confgen generates a concrete configuration file from a declarative
template by interactively collecting typed values from an operator.

A schema document (".confgen.yaml" by default) carries the template body, the
output path and the options its placeholders refer to:

	template: |
	  listen ${{port}};
	  gzip ${{gzip}};
	path: nginx.conf
	options:
	  - name: Port
	    id: port
	    type: Number
	    default: "8080"
	    description: Port to listen on
	  - name: Gzip
	    id: gzip
	    type: Boolean
	    description: Compress responses

# Pipeline

A run is strictly sequential:

  - Bind: every "${{id}}" in the template is resolved to its declaration, in
    first-occurrence order. Undeclared ids, duplicate declarations and
    unsupported types fail here, before anything is asked.
  - Collect: each distinct id is prompted for exactly once. Empty input takes
    the declared default; without one the run fails. Input is coerced to
    String, Number (base-10 integer) or Boolean.
  - Render: each placeholder is replaced with the canonical text of its value.

# Usage

	eng, err := confgen.New(ctx, ".confgen.yaml")
	if err != nil {
		log.Fatal(err)
	}

	text, _, err := eng.Generate(ctx, confgen.PromptFunc(
		func(ctx context.Context, decl domain.OptionDeclaration) (string, error) {
			return answers[decl.ID], nil
		}))

The runner package wraps Generate with terminal prompting, notices and
output writing; the confgen command is built on it.
*/
package confgen
