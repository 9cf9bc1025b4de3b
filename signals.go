package moniker

import (
	"context"
	"reflect"

	"github.com/zoobzio/capitan"
)

// Signals for moniker events.
var (
	SignalDeclared        = capitan.NewSignal("moniker.declared", "Name table associated with an enum type")
	SignalOutOfRange      = capitan.NewSignal("moniker.out_of_range", "Enum value has no declared name")
	SignalUnknownName     = capitan.NewSignal("moniker.unknown_name", "String matches no declared name")
	SignalSourceExhausted = capitan.NewSignal("moniker.source_exhausted", "Input source supplied no token")
	SignalAuditFailed     = capitan.NewSignal("moniker.audit.failed", "Document type references undeclared enums")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyCount    = capitan.NewIntKey("count")
	KeyIndex    = capitan.NewIntKey("index")
	KeyName     = capitan.NewStringKey("name")
	KeyError    = capitan.NewErrorKey("error")
)

// emitDeclared emits an event when a table is stored for a type.
func emitDeclared(typ reflect.Type, count int) {
	capitan.Emit(context.Background(), SignalDeclared,
		KeyTypeName.Field(typeName(typ)),
		KeyCount.Field(count),
	)
}

// emitOutOfRange emits an event when ToString rejects a value.
func emitOutOfRange(typ reflect.Type, index int64, count int, err error) {
	capitan.Error(context.Background(), SignalOutOfRange,
		KeyTypeName.Field(typeName(typ)),
		KeyIndex.Field(int(index)),
		KeyCount.Field(count),
		KeyError.Field(err),
	)
}

// emitUnknownName emits an event when FromString rejects a string.
func emitUnknownName(typ reflect.Type, name string, err error) {
	capitan.Error(context.Background(), SignalUnknownName,
		KeyTypeName.Field(typeName(typ)),
		KeyName.Field(name),
		KeyError.Field(err),
	)
}

// emitSourceExhausted emits an event when Read finds no token.
func emitSourceExhausted(typ reflect.Type, err error) {
	capitan.Error(context.Background(), SignalSourceExhausted,
		KeyTypeName.Field(typeName(typ)),
		KeyError.Field(err),
	)
}

// emitAuditFailed emits an event when Audit reports problems.
func emitAuditFailed(typ reflect.Type, count int, err error) {
	capitan.Error(context.Background(), SignalAuditFailed,
		KeyTypeName.Field(typeName(typ)),
		KeyCount.Field(count),
		KeyError.Field(err),
	)
}
