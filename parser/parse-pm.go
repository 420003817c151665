// File: parser/parse-pm.go

// Package parser extracts tag tables from ExifTool's Perl module
// sources and generates the static Go tables in tags/. This is the
// offline half of the pipeline: the library itself never parses PM
// files, it only reads the generated registry.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// tableStartRe matches the opening of a tag table hash, e.g.
// %Image::ExifTool::Canon::Main = (
var tableStartRe = regexp.MustCompile(`^%Image::ExifTool::(\w+)::(\w+)\s*=\s*\(`)

// tagEntryRe matches the opening of one tag definition, hex or decimal
var tagEntryRe = regexp.MustCompile(`^\s*(0x[0-9a-fA-F]+|\d+)\s*=>\s*(.*)$`)

// simpleNameRe matches a one-line string definition: 0x010e => 'ImageDescription',
var simpleNameRe = regexp.MustCompile(`^'([^']+)'`)

// fieldRe matches Name/Format/Description fields inside a definition block
var fieldRe = regexp.MustCompile(`(Name|Format|Description)\s*=>\s*'([^']*)'`)

// subIFDRe detects subdirectory pointer definitions
var subIFDRe = regexp.MustCompile(`SubDirectory\s*=>`)

// valueRe matches enum entries inside a PrintConv block: 1 => 'sRGB',
var valueRe = regexp.MustCompile(`^\s*(0x[0-9a-fA-F]+|-?\d+|'[^']*')\s*=>\s*'([^']*)'`)

// ParsePMFiles recursively parses all .pm files under dir
func ParsePMFiles(dir string) (*ParsedData, error) {
	data := &ParsedData{TagTables: make(map[string]*TagTable)}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".pm") {
			return nil
		}
		if err := parsePMFile(path, data); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fmt.Printf("Parsed %d tag tables\n", len(data.TagTables))
	return data, nil
}

// parsePMFile extracts tag tables from one PM file
func parsePMFile(path string, data *ParsedData) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var table *TagTable
	var tableName string
	depth := 0

	for scanner.Scan() {
		line := scanner.Text()

		if table == nil {
			if m := tableStartRe.FindStringSubmatch(line); m != nil {
				tableName = m[1] + "::" + m[2]
				table = &TagTable{
					ModuleName: m[1],
					Namespace:  namespaceFor(m[1]),
					Tags:       make(map[string]TagDef),
				}
				depth = 1
			}
			continue
		}

		depth += strings.Count(line, "(") - strings.Count(line, ")")
		if depth <= 0 {
			if len(table.Tags) > 0 {
				data.TagTables[tableName] = table
			}
			table = nil
			continue
		}

		if m := tagEntryRe.FindStringSubmatch(line); m != nil && depth == 1 {
			id := normalizeID(m[1])
			def := parseTagDef(id, m[2], scanner, &depth)
			if def.Name != "" {
				table.Tags[id] = def
			}
		}
	}

	if table != nil && len(table.Tags) > 0 {
		data.TagTables[tableName] = table
	}

	return scanner.Err()
}

// parseTagDef reads one tag definition, consuming continuation lines
// for block-style definitions
func parseTagDef(id, rest string, scanner *bufio.Scanner, depth *int) TagDef {
	def := TagDef{ID: id}

	// One-line string form: 0x010e => 'ImageDescription',
	if m := simpleNameRe.FindStringSubmatch(rest); m != nil {
		def.Name = m[1]
		return def
	}

	if !strings.Contains(rest, "{") {
		return def
	}

	// Block form: read until the braces balance
	blockDepth := strings.Count(rest, "{") - strings.Count(rest, "}")
	lines := []string{rest}
	for blockDepth > 0 && scanner.Scan() {
		line := scanner.Text()
		*depth += strings.Count(line, "(") - strings.Count(line, ")")
		blockDepth += strings.Count(line, "{") - strings.Count(line, "}")
		lines = append(lines, line)
	}

	inPrintConv := false
	for _, line := range lines {
		for _, m := range fieldRe.FindAllStringSubmatch(line, -1) {
			switch m[1] {
			case "Name":
				def.Name = m[2]
			case "Format":
				def.Format = m[2]
			case "Description":
				def.Description = m[2]
			}
		}
		if subIFDRe.MatchString(line) {
			def.SubIFD = def.Name
		}
		if strings.Contains(line, "PrintConv => {") {
			inPrintConv = true
			continue
		}
		if inPrintConv {
			if strings.Contains(line, "}") {
				inPrintConv = false
				continue
			}
			if m := valueRe.FindStringSubmatch(line); m != nil {
				if def.Values == nil {
					def.Values = make(map[string]string)
				}
				def.Values[normalizeID(strings.Trim(m[1], "'"))] = m[2]
			}
		}
	}

	return def
}

// namespaceFor maps a PM module name to its owning namespace
func namespaceFor(module string) string {
	switch module {
	case "Exif":
		return "EXIF"
	case "GPS":
		return "GPS"
	default:
		return module
	}
}

// normalizeID upper-cases hex tag keys to the table convention
func normalizeID(id string) string {
	if strings.HasPrefix(id, "0x") || strings.HasPrefix(id, "0X") {
		return "0x" + strings.ToUpper(id[2:])
	}
	return id
}

// GenerateGoFiles writes one Go file per tag table plus the init file
// registering them
func GenerateGoFiles(data *ParsedData, outputDir string) error {
	tableNames := make([]string, 0, len(data.TagTables))
	for name := range data.TagTables {
		tableNames = append(tableNames, name)
	}
	sort.Strings(tableNames)

	for _, tableName := range tableNames {
		if err := generateTagFile(tableName, data.TagTables[tableName], outputDir); err != nil {
			return fmt.Errorf("error generating file for %s: %w", tableName, err)
		}
	}

	return generateInitFile(tableNames, outputDir)
}

// generateTagFile generates a Go file for a tag table
func generateTagFile(tableName string, table *TagTable, outputDir string) error {
	// "Canon::Main" -> "canon_main.go"
	filename := strings.ToLower(strings.ReplaceAll(tableName, "::", "_")) + ".go"
	file, err := os.Create(filepath.Join(outputDir, filename))
	if err != nil {
		return err
	}
	defer file.Close()

	varName := generateVarName(tableName)

	fmt.Fprintf(file, "// Code generated by gen-tags. DO NOT EDIT.\n\n")
	fmt.Fprintf(file, "package tags\n\n")
	fmt.Fprintf(file, "// %s contains tag definitions from Image::ExifTool::%s\n", varName, table.ModuleName)
	fmt.Fprintf(file, "var %s = TagTable{\n", varName)
	fmt.Fprintf(file, "\tNamespace:  %q,\n", table.Namespace)
	fmt.Fprintf(file, "\tModuleName: %q,\n", table.ModuleName)
	fmt.Fprintf(file, "\tTags: map[string]TagDef{\n")

	ids := make([]string, 0, len(table.Tags))
	for id := range table.Tags {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		tag := table.Tags[id]
		fmt.Fprintf(file, "\t\t%q: {\n", id)
		fmt.Fprintf(file, "\t\t\tID:     %q,\n", tag.ID)
		if tag.Name != "" {
			fmt.Fprintf(file, "\t\t\tName:   %q,\n", tag.Name)
		}
		if tag.Description != "" {
			fmt.Fprintf(file, "\t\t\tDescription: %q,\n", tag.Description)
		}
		if tag.Format != "" {
			fmt.Fprintf(file, "\t\t\tFormat: %q,\n", tag.Format)
		}
		if tag.SubIFD != "" {
			fmt.Fprintf(file, "\t\t\tSubIFD: %q,\n", tag.SubIFD)
		}
		if len(tag.Values) > 0 {
			fmt.Fprintf(file, "\t\t\tValues: map[string]string{\n")
			valueKeys := make([]string, 0, len(tag.Values))
			for k := range tag.Values {
				valueKeys = append(valueKeys, k)
			}
			sort.Strings(valueKeys)
			for _, k := range valueKeys {
				fmt.Fprintf(file, "\t\t\t\t%q: %q,\n", k, tag.Values[k])
			}
			fmt.Fprintf(file, "\t\t\t},\n")
		}
		fmt.Fprintf(file, "\t\t},\n")
	}

	fmt.Fprintf(file, "\t},\n")
	fmt.Fprintf(file, "}\n")
	return nil
}

// generateInitFile generates the file registering all tables
func generateInitFile(tableNames []string, outputDir string) error {
	file, err := os.Create(filepath.Join(outputDir, "init.go"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "// Code generated by gen-tags. DO NOT EDIT.\n\n")
	fmt.Fprintf(file, "package tags\n\n")
	fmt.Fprintf(file, "func init() {\n")
	for _, name := range tableNames {
		fmt.Fprintf(file, "\tRegisterTagTable(%q, &%s)\n", name, generateVarName(name))
	}
	fmt.Fprintf(file, "}\n")
	return nil
}

// generateVarName turns "Canon::Main" into "CanonMain"
func generateVarName(tableName string) string {
	return strings.ReplaceAll(tableName, "::", "")
}
