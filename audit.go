package moniker

import (
	"errors"
	"go/token"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// auditTag opts a field out of Audit with `moniker:"-"`.
const auditTag = "moniker"

func init() {
	sentinel.Tag(auditTag)
}

var namedFieldType = reflect.TypeFor[namedField]()

// Audit checks a document type before it is used for decoding. Every
// Named[E] field reachable from T (through nested structs, pointers, slices,
// arrays and map values) must have at least one declared name for E.
//
// The result joins one *AuditError (errors.Is ErrUndeclared) per offending
// field, or is nil. T must be a struct; anything else fails with ErrNotStruct.
//
// Call it at startup so a missing declaration fails there instead of on
// the first config file or request that carries the field.
func Audit[T any]() error {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return &AuditError{Err: ErrNotStruct, Type: typ}
	}

	a := auditor{seen: map[reflect.Type]bool{typ: true}}
	a.walk(sentinel.Scan[T](), "")

	if len(a.errs) == 0 {
		return nil
	}
	err := errors.Join(a.errs...)
	emitAuditFailed(typ, len(a.errs), err)
	return err
}

type auditor struct {
	seen map[reflect.Type]bool
	errs []error
}

// walk visits the fields of one struct.
func (a *auditor) walk(spec sentinel.Metadata, prefix string) {
	for _, field := range spec.Fields {
		if !token.IsExported(field.Name) || field.Tags[auditTag] == "-" {
			continue
		}
		name := field.Name
		if prefix != "" {
			name = prefix + "." + field.Name
		}
		a.check(field.ReflectType, name)
	}
}

// check inspects one field type, unwrapping containers down to the element.
func (a *auditor) check(rt reflect.Type, name string) {
	for isContainer(rt.Kind()) {
		rt = rt.Elem()
	}

	if rt.Implements(namedFieldType) {
		nf := reflect.Zero(rt).Interface().(namedField)
		if nf.enumLen() == 0 {
			a.errs = append(a.errs, &AuditError{Err: ErrUndeclared, Type: nf.enumType(), Field: name})
		}
		return
	}

	if rt.Kind() != reflect.Struct || a.seen[rt] {
		return
	}
	a.seen[rt] = true
	if nested := scanNestedType(rt); nested != nil {
		a.walk(*nested, name)
	}
}

func isContainer(k reflect.Kind) bool {
	return k == reflect.Ptr || k == reflect.Slice || k == reflect.Array || k == reflect.Map
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if v, ok := sf.Tag.Lookup(auditTag); ok {
			fm.Tags[auditTag] = v
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}
