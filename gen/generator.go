// Package gen renders declared enums to source files: Go constant blocks for
// the consuming model layer and a JS module for client-side build tooling.
package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/enu-go/enu"
	"golang.org/x/tools/imports"
)

// File is one generated file with its resolved output path.
type File struct {
	Path    string
	Content []byte
}

// Output collects the files produced by one generation run.
type Output struct {
	Files []File
}

// Config controls what the generator emits. An empty output path disables
// that format.
type Config struct {
	Package string // package name of the generated Go file
	GoOut   string // path of the generated Go file
	JSOut   string // path of the generated JS file
}

// Generator renders every enum of a registry according to its config.
type Generator struct {
	config   *Config
	registry *enu.Registry
}

func New(config *Config, registry *enu.Registry) *Generator {
	return &Generator{config: config, registry: registry}
}

const header = "// Code generated by enu. DO NOT EDIT.\n\n"

// Generate renders all configured formats without touching the filesystem.
func (g *Generator) Generate() (*Output, error) {
	output := &Output{}

	if g.config.GoOut != "" {
		src, err := g.GenerateGo()
		if err != nil {
			return nil, fmt.Errorf("generate go: %w", err)
		}
		output.Files = append(output.Files, File{Path: g.config.GoOut, Content: src})
	}

	if g.config.JSOut != "" {
		src, err := g.GenerateJS()
		if err != nil {
			return nil, fmt.Errorf("generate js: %w", err)
		}
		output.Files = append(output.Files, File{Path: g.config.JSOut, Content: src})
	}

	return output, nil
}

// GenerateGo emits one Go source file containing, per enum, a string
// constant per option, the default key, the ordered key slice and the
// key→value map. The result is gofmt-formatted.
func (g *Generator) GenerateGo() ([]byte, error) {
	pkg := g.config.Package
	if pkg == "" {
		pkg = "enums"
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, name := range g.registry.Names() {
		e, _ := g.registry.Get(name)
		writeGoEnum(&buf, GoName(name), e)
	}

	src, err := imports.Process(g.config.GoOut, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func writeGoEnum(buf *bytes.Buffer, goName string, e *enu.Enum) {
	opts := e.Options()
	if len(opts) == 0 {
		fmt.Fprintf(buf, "// %s has no options declared.\n\n", goName)
		return
	}

	fmt.Fprintf(buf, "// %s keys.\nconst (\n", goName)
	for _, o := range opts {
		fmt.Fprintf(buf, "\t%s%s = %q\n", goName, GoName(o.Key), o.Key)
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(buf, "// %sDefault is the first-declared %s key.\n", goName, goName)
	fmt.Fprintf(buf, "const %sDefault = %s%s\n\n", goName, goName, GoName(opts[0].Key))

	fmt.Fprintf(buf, "// %sKeys lists the %s keys in declaration order.\n", goName, goName)
	fmt.Fprintf(buf, "var %sKeys = []string{\n", goName)
	for _, o := range opts {
		fmt.Fprintf(buf, "\t%s%s,\n", goName, GoName(o.Key))
	}
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "// %sValues maps %s keys to their integer codes.\n", goName, goName)
	fmt.Fprintf(buf, "var %sValues = map[string]int{\n", goName)
	for _, o := range opts {
		fmt.Fprintf(buf, "\t%s%s: %d,\n", goName, GoName(o.Key), o.Value)
	}
	buf.WriteString("}\n\n")
}

// GenerateJS emits one JS module exporting, per enum, a const object mapping
// each option key to itself, in declaration order.
func (g *Generator) GenerateJS() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	for _, name := range g.registry.Names() {
		e, _ := g.registry.Get(name)
		obj, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "export const %s = %s;\n", GoName(name), obj)
	}

	return buf.Bytes(), nil
}

// Write generates all configured files and writes them to disk, creating
// directories as needed.
func (g *Generator) Write() error {
	output, err := g.Generate()
	if err != nil {
		return err
	}

	for _, file := range output.Files {
		outputPath := file.Path
		if !filepath.IsAbs(outputPath) {
			outputPath = filepath.Clean(outputPath)
		}

		dir := filepath.Dir(outputPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(outputPath, file.Content, 0644); err != nil {
			return fmt.Errorf("write file %s: %w", outputPath, err)
		}

		slog.Info(fmt.Sprintf("Generated %s (%d bytes)", outputPath, len(file.Content)))
	}

	return nil
}

// GoName converts a declared name like "post_status" to an exported Go
// identifier like "PostStatus".
func GoName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteByte('X')
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
