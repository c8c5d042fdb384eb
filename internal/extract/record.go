package extract

import (
	"fmt"
)

// Param is one method parameter.
type Param struct {
	Type string
	Name string
}

// MethodRecord is one extracted method. ID and FilePath identify the record
// for downstream consumers; neither appears in the formatted output block.
type MethodRecord struct {
	ID                   string
	FilePath             string
	FullyQualifiedName   string
	EnclosingTypeName    string
	EnclosingTypeComment string
	MethodName           string
	ReturnType           string
	Modifiers            []string
	Parameters           []Param
	MethodComment        string
	DeclarationText      string
	BodyText             string
}

// FormatBlock renders a record into the flat text block written to the
// corpus, one block per method. Field order is fixed: qualified name, type
// comment, type name, method comment, body.
func FormatBlock(r MethodRecord) string {
	return fmt.Sprintf(`- qualified name: %s
   - type comment:
   %s
   - type name: %s
   - method comment and body:
       %s
   %s
`, r.FullyQualifiedName, r.EnclosingTypeComment, r.EnclosingTypeName, r.MethodComment, r.BodyText)
}
