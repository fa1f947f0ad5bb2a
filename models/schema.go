package models

// Schema identifies which of the two record shapes a project uses.
type Schema int

const (
	// SchemaGeneric is the minimal "scanned code" shape used by most projects.
	SchemaGeneric Schema = iota
	// SchemaRich is the wide multi-checkpoint shape used by the flagship
	// project variant.
	SchemaRich
)

var schemaNames = map[Schema]string{
	SchemaGeneric: "ScannedCodes",
	SchemaRich:    "MultiCheckpoint",
}

func (s Schema) String() string {
	if n, ok := schemaNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseSchema maps a wire/query label to a Schema. Anything unrecognised
// falls back to the generic shape.
func ParseSchema(label string) Schema {
	switch label {
	case "rich", "multi", "multicheckpoint", "MultiCheckpoint":
		return SchemaRich
	default:
		return SchemaGeneric
	}
}
