package format

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"gopkg.in/yaml.v3"
)

// Tree converts a syntax tree into a YAML node. Every struct becomes a
// mapping whose first key, "node", names its Go type. Nil, false and empty
// fields are omitted. Identifiers, names, aliases, data types and column options
// are written as their SQL text.
func Tree(n ast.Node) *yaml.Node {
	if n == nil {
		return scalar("!!null", "null")
	}
	return tree(reflect.ValueOf(n))
}

// WriteTree writes one YAML document per statement.
func WriteTree(w io.Writer, stmts ...ast.Statement) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	for _, stmt := range stmts {
		if err := enc.Encode(Tree(stmt)); err != nil {
			return errors.Wrap(err, "failed to encode syntax tree")
		}
	}

	return errors.Wrap(enc.Close(), "failed to flush syntax tree")
}

var leafTypes = map[reflect.Type]bool{
	reflect.TypeOf(ast.Ident{}):        true,
	reflect.TypeOf(ast.ObjectName{}):   true,
	reflect.TypeOf(ast.TableAlias{}):   true,
	reflect.TypeOf(ast.DataType{}):     true,
	reflect.TypeOf(ast.ColumnOption{}): true,
}

func tree(v reflect.Value) *yaml.Node {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return scalar("!!null", "null")
		}
		if v.Kind() == reflect.Pointer && leafTypes[v.Type().Elem()] {
			return scalar("!!str", v.Interface().(fmt.Stringer).String())
		}
		v = v.Elem()
	}

	if leafTypes[v.Type()] {
		// TableAlias and DataType render through pointer receivers.
		if v.CanAddr() {
			return scalar("!!str", v.Addr().Interface().(fmt.Stringer).String())
		}
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		return scalar("!!str", cp.Interface().(fmt.Stringer).String())
	}

	switch v.Kind() {
	case reflect.Struct:
		node := &yaml.Node{Kind: yaml.MappingNode}
		node.Content = append(node.Content, scalar("!!str", "node"), scalar("!!str", v.Type().Name()))
		for i := range v.NumField() {
			field := v.Type().Field(i)
			if !field.IsExported() || omitted(v.Field(i)) {
				continue
			}
			node.Content = append(node.Content, scalar("!!str", field.Name), tree(v.Field(i)))
		}
		return node
	case reflect.Slice:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range v.Len() {
			node.Content = append(node.Content, tree(v.Index(i)))
		}
		return node
	case reflect.Bool:
		return scalar("!!bool", strconv.FormatBool(v.Bool()))
	case reflect.String:
		return scalar("!!str", v.String())
	default:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return scalar("!!str", s.String())
		}
		return scalar("!!int", fmt.Sprint(v.Interface()))
	}
}

// omitted reports whether a field is left out of the tree. Enumerations are
// always written since their zero value is meaningful.
func omitted(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Bool, reflect.String:
		return v.IsZero()
	default:
		return false
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
