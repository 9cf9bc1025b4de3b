package moniker_test

import "github.com/zoobzio/moniker"

// WeakEnum carries a trailing END constant that has no name.
type WeakEnum int

const (
	WeakA WeakEnum = iota
	WeakB
	WeakEND
)

var _ = moniker.DeclareCount(WeakEND, "wa", "wb")

// StrongEnum uses a narrow underlying type.
type StrongEnum int16

const (
	StrongA StrongEnum = iota
	StrongB
)

var _ = moniker.Declare[StrongEnum]("sa", "sb")

// Level names itself through the Namer trait.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (Level) EnumNames() []string { return []string{"debug", "info", "warn"} }

// Hollow is declared with no names.
type Hollow int

const HollowOnly Hollow = 0

var _ = moniker.Declare[Hollow]()

// Orphan is never declared.
type Orphan int

const OrphanOnly Orphan = 0
