package catalog

// Target flag bits (record byte 0x0A).
const (
	TargetDead         = 0
	TargetSingleSide   = 3
	TargetSingleTarget = 4
	TargetEnemy        = 6
)

// Attack flag bits (record byte 0x0B).
const (
	AttackFlagShelled       = 0
	AttackFlagBreakDmgLimit = 3
	AttackFlagReflected     = 4
	AttackFlagRevive        = 7
)

// Status effect bits of the 48-bit effect set. Bits 0-31 live in the low
// word on disk, 32-47 in the high half-word.
const (
	StatusSleep      = 0
	StatusHaste      = 1
	StatusSlow       = 2
	StatusStop       = 3
	StatusRegen      = 4
	StatusProtect    = 5
	StatusShell      = 6
	StatusReflect    = 7
	StatusAura       = 8
	StatusCurse      = 9
	StatusDoom       = 10
	StatusInvincible = 11
	StatusPetrifying = 12
	StatusFloat      = 13
	StatusConfuse    = 14
	StatusDrain      = 15
	StatusEject      = 16
	StatusDouble     = 17
	StatusTriple     = 18
	StatusDefend     = 19
	StatusCharged    = 22
	StatusBackAttack = 23
	StatusVit0       = 24
	StatusAngelWing  = 25
	StatusDeath      = 32
	StatusPoison     = 33
	StatusPetrify    = 34
	StatusDarkness   = 35
	StatusSilence    = 36
	StatusBerserk    = 37
	StatusZombie     = 38
)

var (
	// TargetFlags names the bits of the target flag byte.
	TargetFlags = newTable("target", 8, map[int]string{
		TargetDead:         "dead",
		TargetSingleSide:   "single-side",
		TargetSingleTarget: "single-target",
		TargetEnemy:        "enemy",
	})

	// AttackFlags names the bits of the attack flag byte.
	AttackFlags = newTable("attack-flag", 8, map[int]string{
		AttackFlagShelled:       "shelled",
		AttackFlagBreakDmgLimit: "break-damage-limit",
		AttackFlagReflected:     "reflected",
		AttackFlagRevive:        "revive",
	})

	// ElementBits names the bits of a bit-per-element mask such as the junction
	// defense element byte. Bit i corresponds to the Element with code 1<<i.
	ElementBits = newTable("element", 8, map[int]string{
		0: "fire",
		1: "ice",
		2: "thunder",
		3: "earth",
		4: "poison",
		5: "wind",
		6: "water",
		7: "holy",
	})

	// Statuses names the 48 status effect slots.
	Statuses = newTable("status", 48, map[int]string{
		StatusSleep:      "sleep",
		StatusHaste:      "haste",
		StatusSlow:       "slow",
		StatusStop:       "stop",
		StatusRegen:      "regen",
		StatusProtect:    "protect",
		StatusShell:      "shell",
		StatusReflect:    "reflect",
		StatusAura:       "aura",
		StatusCurse:      "curse",
		StatusDoom:       "doom",
		StatusInvincible: "invincible",
		StatusPetrifying: "petrifying",
		StatusFloat:      "float",
		StatusConfuse:    "confuse",
		StatusDrain:      "drain",
		StatusEject:      "eject",
		StatusDouble:     "double",
		StatusTriple:     "triple",
		StatusDefend:     "defend",
		StatusCharged:    "charged",
		StatusBackAttack: "back-attack",
		StatusVit0:       "vit0",
		StatusAngelWing:  "angel-wing",
		StatusDeath:      "death",
		StatusPoison:     "poison",
		StatusPetrify:    "petrify",
		StatusDarkness:   "darkness",
		StatusSilence:    "silence",
		StatusBerserk:    "berserk",
		StatusZombie:     "zombie",
	})
)
