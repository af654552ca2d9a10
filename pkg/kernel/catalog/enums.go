package catalog

import (
	"fmt"

	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

// AttackType is the damage formula selector stored at record byte 0x07.
type AttackType uint8

const (
	AttackTypeNone AttackType = iota
	AttackTypePhysical
	AttackTypeMagic
	AttackTypeCurativeMagic
	AttackTypeCurativeItem
	AttackTypeRevive
	AttackTypeReviveFullHP
	AttackTypePhysicalDamage
	AttackTypeMagicDamage
	AttackTypeRenzokukenFinisher
	AttackTypeGunbladeAttack
	AttackTypeGF
	AttackTypeScan
	AttackTypeLvDown
	AttackTypeSummonItem
	AttackTypeGFIgnoreSPR
	AttackTypeLvUp
	AttackTypeCard
	AttackTypeKamikaze
	AttackTypeDevour
	AttackTypeGFDamage
	AttackTypeUnknown21
	AttackTypeMagicIgnoreSPR
	AttackTypeAngeloSearch
	AttackTypeMoogleDance
	AttackTypeWhiteWind
	AttackTypeLvAttack
	AttackTypeFixedDamage
	AttackTypeTargetCurrentHP1
	AttackTypeFixedMagicByGFLevel
	AttackTypeUnknown30
	AttackTypeUnknown31
	AttackTypeGivePercentageHP
	AttackTypeUnknown33
	AttackTypeEveryonesGrudge
	AttackTypeOneHPDamage
	AttackTypePhysicalIgnoreVIT

	attackTypeCount
)

var attackTypeNames = [attackTypeCount]string{
	"none",
	"physical-attack",
	"magic-attack",
	"curative-magic",
	"curative-item",
	"revive",
	"revive-full-hp",
	"physical-damage",
	"magic-damage",
	"renzokuken-finisher",
	"gunblade-attack",
	"gf",
	"scan",
	"lv-down",
	"summon-item",
	"gf-ignore-spr",
	"lv-up",
	"card",
	"kamikaze",
	"devour",
	"gf-damage",
	"unknown-21",
	"magic-ignore-spr",
	"angelo-search",
	"moogle-dance",
	"white-wind",
	"lv-attack",
	"fixed-damage",
	"target-current-hp-1",
	"fixed-magic-by-gf-level",
	"unknown-30",
	"unknown-31",
	"give-percentage-hp",
	"unknown-33",
	"everyones-grudge",
	"one-hp-damage",
	"physical-ignore-vit",
}

var attackTypeByName = func() map[string]AttackType {
	m := make(map[string]AttackType, attackTypeCount)
	for i, name := range attackTypeNames {
		m[name] = AttackType(i)
	}
	return m
}()

// AttackTypeCount is the number of catalogued attack types, including none.
const AttackTypeCount = int(attackTypeCount)

// Known reports whether t is a catalogued code.
func (t AttackType) Known() bool { return t < attackTypeCount }

func (t AttackType) String() string {
	if t.Known() {
		return attackTypeNames[t]
	}
	return fmt.Sprintf("attack-type-0x%02x", uint8(t))
}

// LenientAttackType resolves code, falling back to AttackTypeNone when the code
// is not catalogued. ok is false in that case so callers can record a warning.
func LenientAttackType(code uint8) (t AttackType, ok bool) {
	if AttackType(code).Known() {
		return AttackType(code), true
	}
	return AttackTypeNone, false
}

// StrictAttackType resolves code or fails with a StrictDecodeError.
func StrictAttackType(code uint8) (AttackType, error) {
	if AttackType(code).Known() {
		return AttackType(code), nil
	}
	return AttackTypeNone, &kerrors.StrictDecodeError{Kind: "attack type", Code: code}
}

// ParseAttackType resolves a symbolic attack type name.
func ParseAttackType(name string) (AttackType, error) {
	if t, ok := attackTypeByName[name]; ok {
		return t, nil
	}
	return AttackTypeNone, fmt.Errorf("unknown attack type %q", name)
}

// Element is the bit-valued element code stored at record byte 0x0E.
type Element uint8

const (
	ElementNone    Element = 0x00
	ElementFire    Element = 0x01
	ElementIce     Element = 0x02
	ElementThunder Element = 0x04
	ElementEarth   Element = 0x08
	ElementPoison  Element = 0x10
	ElementWind    Element = 0x20
	ElementWater   Element = 0x40
	ElementHoly    Element = 0x80
)

var elementNames = map[Element]string{
	ElementNone:    "none",
	ElementFire:    "fire",
	ElementIce:     "ice",
	ElementThunder: "thunder",
	ElementEarth:   "earth",
	ElementPoison:  "poison",
	ElementWind:    "wind",
	ElementWater:   "water",
	ElementHoly:    "holy",
}

var elementByName = func() map[string]Element {
	m := make(map[string]Element, len(elementNames))
	for e, name := range elementNames {
		m[name] = e
	}
	return m
}()

// Known reports whether e is a catalogued code.
func (e Element) Known() bool {
	_, ok := elementNames[e]
	return ok
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("element-0x%02x", uint8(e))
}

// LenientElement resolves code, falling back to ElementNone for codes that are
// not a single catalogued element.
func LenientElement(code uint8) (e Element, ok bool) {
	if Element(code).Known() {
		return Element(code), true
	}
	return ElementNone, false
}

// StrictElement resolves code or fails with a StrictDecodeError.
func StrictElement(code uint8) (Element, error) {
	if Element(code).Known() {
		return Element(code), nil
	}
	return ElementNone, &kerrors.StrictDecodeError{Kind: "element", Code: code}
}

// ParseElement resolves a symbolic element name.
func ParseElement(name string) (Element, error) {
	if e, ok := elementByName[name]; ok {
		return e, nil
	}
	return ElementNone, fmt.Errorf("unknown element %q", name)
}
