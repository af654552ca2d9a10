package magic

// Core format constants of the kernel magic section. These never change.
const (
	RecordSize    = 0x3C   // Spell record size
	SectionOffset = 0x021C // Start of the spell record section
	RecordCount   = 56     // Records in a retail section
	TextBlobBase  = 0x5188 // Start of the section's text blob

	// Field offsets inside a record
	offName              = 0x00
	offDesc              = 0x02
	offID                = 0x04
	offAnimation         = 0x06
	offAttackType        = 0x07
	offPower             = 0x08
	offReserved1         = 0x09
	offTargets           = 0x0A
	offAttackFlags       = 0x0B
	offDrawResist        = 0x0C
	offHitCount          = 0x0D
	offElement           = 0x0E
	offReserved2         = 0x0F
	offStatusLow         = 0x10
	offStatusHigh        = 0x14
	offStatusEnabler     = 0x16
	offJunctionStats     = 0x17
	offJunctionElemental = 0x20
	offJunctionStatus    = 0x24
	offGFCompatibility   = 0x2A
	offReserved3         = 0x3A
)
