package extract

import (
	"strings"

	"github.com/google/uuid"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemill/javacorpus/internal/parser"
)

// Diagnostic records a non-fatal extraction problem (a skipped method or
// file).
type Diagnostic struct {
	FilePath string
	Line     int
	Message  string
}

// DefaultPackage is the package segment used when a file has no package
// clause.
const DefaultPackage = "default"

// ExtractFile walks a parsed file and produces one MethodRecord per method
// declared inside a class or interface. Methods with no enclosing class or
// interface are skipped with a diagnostic.
func ExtractFile(f *parser.File, filePath string) ([]MethodRecord, []Diagnostic) {
	src := f.Source
	lines := strings.Split(string(src), "\n")

	pkg := f.PackageName()
	if pkg == "" {
		pkg = DefaultPackage
	}

	var records []MethodRecord
	var diags []Diagnostic

	parser.Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Kind() != "method_declaration" {
			return true
		}

		enclosing := enclosingType(n)
		if enclosing == nil {
			diags = append(diags, Diagnostic{
				FilePath: filePath,
				Line:     int(n.StartPosition().Row) + 1,
				Message:  "method not declared within a class or interface",
			})
			return true
		}

		records = append(records, buildRecord(n, enclosing, src, lines, pkg, filePath))
		return true
	})

	return records, diags
}

// enclosingType climbs the ancestor chain from a method node and returns the
// nearest class or interface declaration, or nil when there is none.
func enclosingType(n *sitter.Node) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Kind() {
		case "class_declaration", "interface_declaration":
			return p
		}
	}
	return nil
}

func buildRecord(n, enclosing *sitter.Node, src []byte, lines []string, pkg, filePath string) MethodRecord {
	typeName := parser.NodeText(enclosing.ChildByFieldName("name"), src)
	methodName := parser.NodeText(n.ChildByFieldName("name"), src)

	returnType := "void"
	if t := n.ChildByFieldName("type"); t != nil {
		returnType = parser.NodeText(t, src)
	}

	// Tree-sitter positions are already 0-based.
	startLine := int(n.StartPosition().Row)
	startCol := int(n.StartPosition().Column)

	return MethodRecord{
		ID:                   uuid.New().String(),
		FilePath:             filePath,
		FullyQualifiedName:   pkg + "." + typeName + "." + methodName,
		EnclosingTypeName:    typeName,
		EnclosingTypeComment: parser.Doc(enclosing, src),
		MethodName:           methodName,
		ReturnType:           returnType,
		Modifiers:            methodModifiers(n, src),
		Parameters:           methodParams(n, src),
		MethodComment:        parser.Doc(n, src),
		DeclarationText:      ExtractDeclaration(lines, startLine, startCol, renderDeclaration(n, src)),
		BodyText:             ExtractBody(lines, startLine),
	}
}

// methodModifiers collects modifier keywords (public, static, final, ...),
// excluding annotations.
func methodModifiers(n *sitter.Node, src []byte) []string {
	mods := parser.FindChildByKind(n, "modifiers")
	if mods == nil {
		return nil
	}
	var out []string
	for i := 0; i < int(mods.ChildCount()); i++ {
		child := mods.Child(uint(i))
		switch child.Kind() {
		case "marker_annotation", "annotation":
			continue
		}
		out = append(out, parser.NodeText(child, src))
	}
	return out
}

func methodParams(n *sitter.Node, src []byte) []Param {
	paramsNode := n.ChildByFieldName("parameters")
	if paramsNode == nil {
		return nil
	}
	var out []Param
	for i := 0; i < int(paramsNode.ChildCount()); i++ {
		child := paramsNode.Child(uint(i))
		switch child.Kind() {
		case "formal_parameter", "spread_parameter":
			out = append(out, Param{
				Type: parser.NodeText(child.ChildByFieldName("type"), src),
				Name: parser.NodeText(child.ChildByFieldName("name"), src),
			})
		}
	}
	return out
}

// renderDeclaration builds the whitespace-normalized structural rendering of
// a method declaration used as the matching target by ExtractDeclaration:
// modifiers, return type, name, parameter list and throws clause, single
// spaces between parts.
func renderDeclaration(n *sitter.Node, src []byte) string {
	var parts []string
	if mods := parser.FindChildByKind(n, "modifiers"); mods != nil {
		parts = append(parts, strings.Fields(parser.NodeText(mods, src))...)
	}
	if t := n.ChildByFieldName("type"); t != nil {
		parts = append(parts, strings.Fields(parser.NodeText(t, src))...)
	}

	head := strings.Join(parts, " ")

	name := parser.NodeText(n.ChildByFieldName("name"), src)
	params := parser.NodeText(n.ChildByFieldName("parameters"), src)
	sig := name + strings.Join(strings.Fields(params), " ")
	if head != "" {
		sig = head + " " + sig
	}

	if throws := parser.FindChildByKind(n, "throws"); throws != nil {
		sig += " " + strings.Join(strings.Fields(parser.NodeText(throws, src)), " ")
	}
	return sig
}
