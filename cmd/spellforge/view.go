package main

import (
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/catalog"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/text"
)

// spellView is the human-readable form of a record printed by dump.
type spellView struct {
	Index          int              `yaml:"index" json:"index"`
	Offset         int              `yaml:"offset" json:"offset"`
	Name           string           `yaml:"name" json:"name"`
	Description    string           `yaml:"description" json:"description"`
	NameOffset     uint16           `yaml:"name_offset" json:"name_offset"`
	DescOffset     uint16           `yaml:"desc_offset" json:"desc_offset"`
	ID             uint16           `yaml:"id" json:"id"`
	AnimationID    uint8            `yaml:"animation_id" json:"animation_id"`
	AttackType     string           `yaml:"attack_type" json:"attack_type"`
	AttackTypeCode uint8            `yaml:"attack_type_code" json:"attack_type_code"`
	Power          uint8            `yaml:"power" json:"power"`
	Targets        []string         `yaml:"targets,omitempty" json:"targets,omitempty"`
	AttackFlags    []string         `yaml:"attack_flags,omitempty" json:"attack_flags,omitempty"`
	DrawResist     uint8            `yaml:"draw_resist" json:"draw_resist"`
	HitCount       uint8            `yaml:"hit_count" json:"hit_count"`
	Element        string           `yaml:"element" json:"element"`
	ElementCode    uint8            `yaml:"element_code" json:"element_code"`
	Statuses       []string         `yaml:"statuses,omitempty" json:"statuses,omitempty"`
	StatusEnabler  uint8            `yaml:"status_enabler" json:"status_enabler"`
	Junction       junctionView     `yaml:"junction" json:"junction"`
	Compatibility  map[string]uint8 `yaml:"compatibility" json:"compatibility"`
}

type junctionView struct {
	Stats            map[string]uint8 `yaml:"stats" json:"stats"`
	AttackElement    string           `yaml:"attack_element" json:"attack_element"`
	AttackElemValue  uint8            `yaml:"attack_element_value" json:"attack_element_value"`
	DefenseElements  []string         `yaml:"defense_elements,omitempty" json:"defense_elements,omitempty"`
	DefenseElemValue uint8            `yaml:"defense_element_value" json:"defense_element_value"`
	AttackStatuses   []string         `yaml:"attack_statuses,omitempty" json:"attack_statuses,omitempty"`
	AttackStatValue  uint8            `yaml:"attack_status_value" json:"attack_status_value"`
	DefenseStatuses  []string         `yaml:"defense_statuses,omitempty" json:"defense_statuses,omitempty"`
	DefenseStatValue uint8            `yaml:"defense_status_value" json:"defense_status_value"`
}

// newSpellView resolves r's codes and flags through the catalog and reads its
// text from file relative to textBase.
func newSpellView(index, offset int, r *magic.Record, file []byte, textBase int) spellView {
	name, desc := text.RecordText(file, textBase, r)

	stats := make(map[string]uint8, catalog.StatCount)
	for _, s := range catalog.AllStats() {
		stats[s.String()] = r.Stat(s)
	}
	compat := make(map[string]uint8, catalog.GFCount)
	for _, g := range catalog.AllGFs() {
		compat[g.String()] = r.Compatibility(g)
	}

	je := r.JunctionElemental
	js := r.JunctionStatus
	return spellView{
		Index:          index,
		Offset:         offset,
		Name:           name,
		Description:    desc,
		NameOffset:     r.NameOffset,
		DescOffset:     r.DescOffset,
		ID:             r.ID,
		AnimationID:    r.AnimationID,
		AttackType:     catalog.AttackType(r.AttackTypeCode).String(),
		AttackTypeCode: r.AttackTypeCode,
		Power:          r.Power,
		Targets:        r.TargetNames(),
		AttackFlags:    r.AttackFlagNames(),
		DrawResist:     r.DrawResist,
		HitCount:       r.HitCount,
		Element:        catalog.Element(r.ElementCode).String(),
		ElementCode:    r.ElementCode,
		Statuses:       r.StatusNames(),
		StatusEnabler:  r.StatusEnabler,
		Junction: junctionView{
			Stats:            stats,
			AttackElement:    catalog.Element(je.AttackElement).String(),
			AttackElemValue:  je.AttackValue,
			DefenseElements:  catalog.ElementBits.Names(je.DefenseElements.Active()),
			DefenseElemValue: je.DefenseValue,
			AttackStatuses:   catalog.Statuses.Names(r.JunctionAttackStatuses().Active()),
			AttackStatValue:  js.AttackValue,
			DefenseStatuses:  catalog.Statuses.Names(r.JunctionDefenseStatuses().Active()),
			DefenseStatValue: js.DefenseValue,
		},
		Compatibility: compat,
	}
}
