package domain

// OptionType enumerates the value kinds an option can declare.
type OptionType string

const (
	TypeString  OptionType = "String"
	TypeNumber  OptionType = "Number"
	TypeBoolean OptionType = "Boolean"
)

// DefaultSpecFile is the schema document looked up in the working directory.
const DefaultSpecFile = ".confgen.yaml"

// PlaceholderOpen and PlaceholderClose delimit a placeholder id in a template body.
const (
	PlaceholderOpen  = "${{"
	PlaceholderClose = "}}"
)

// Placeholder returns the literal placeholder text for id.
func Placeholder(id string) string {
	return PlaceholderOpen + id + PlaceholderClose
}
