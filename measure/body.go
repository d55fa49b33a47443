// seehuhn.de/go/patron - sewing pattern blocks from body measurements
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package measure holds the body measurements used to draft pattern blocks.
//
// All values are in centimetres. A complete [Body] either comes from the
// French size table ([ForSize]) or from externally supplied values
// ([FromMap], [Decode]); both boundaries reject incomplete input.
package measure

// Body is the full set of 24 body measurements, numbered as in the French
// drafting tradition.
type Body struct {
	BackWaistLength       float64 `toml:"back_waist_length"`        // 1. longueur taille dos
	FrontWaistLength      float64 `toml:"front_waist_length"`       // 2. longueur taille devant
	FullBust              float64 `toml:"full_bust"`                // 3. tour de poitrine
	BustHeight            float64 `toml:"bust_height"`              // 4. hauteur de poitrine
	HalfBustPointDistance float64 `toml:"half_bust_point_distance"` // 5. 1/2 écart de poitrine
	FullWaist             float64 `toml:"full_waist"`               // 6. tour de taille
	SmallHip              float64 `toml:"small_hip"`                // 7. tour des petites hanches
	FullHip               float64 `toml:"full_hip"`                 // 8. tour de bassin
	NeckCircumference     float64 `toml:"neck_circumference"`       // 9. tour d'encolure
	HalfBackWidth         float64 `toml:"half_back_width"`          // 10. 1/2 carrure dos
	HalfFrontWidth        float64 `toml:"half_front_width"`         // 11. 1/2 carrure devant
	ShoulderLength        float64 `toml:"shoulder_length"`          // 12. longueur d'épaule
	ArmholeCircumference  float64 `toml:"armhole_circumference"`    // 13. tour d'emmanchure
	UnderarmHeight        float64 `toml:"underarm_height"`          // 14. hauteur dessous de bras
	ArmLength             float64 `toml:"arm_length"`               // 15. longueur de bras
	UpperArm              float64 `toml:"upper_arm"`                // 16. grosseur de bras
	ElbowHeight           float64 `toml:"elbow_height"`             // 17. hauteur coude
	Wrist                 float64 `toml:"wrist"`                    // 18. tour de poignet
	WaistToHip            float64 `toml:"waist_to_hip"`             // 19. hauteur taille-bassin
	CrotchDepth           float64 `toml:"crotch_depth"`             // 20. hauteur de montant
	CrotchLength          float64 `toml:"crotch_length"`            // 21. enfourchure
	WaistToKnee           float64 `toml:"waist_to_knee"`            // 22. hauteur taille au genou
	WaistToFloor          float64 `toml:"waist_to_floor"`           // 23. hauteur taille à terre
	SideWaistToFloor      float64 `toml:"side_waist_to_floor"`      // 24. hauteur taille côté à terre
}

// Fields lists the measurement names in drafting order.
var Fields = []string{
	"back_waist_length",
	"front_waist_length",
	"full_bust",
	"bust_height",
	"half_bust_point_distance",
	"full_waist",
	"small_hip",
	"full_hip",
	"neck_circumference",
	"half_back_width",
	"half_front_width",
	"shoulder_length",
	"armhole_circumference",
	"underarm_height",
	"arm_length",
	"upper_arm",
	"elbow_height",
	"wrist",
	"waist_to_hip",
	"crotch_depth",
	"crotch_length",
	"waist_to_knee",
	"waist_to_floor",
	"side_waist_to_floor",
}

// Field returns a pointer to the measurement with the given name.
// The second return value is false if the name is unknown.
func (b *Body) Field(name string) (*float64, bool) {
	switch name {
	case "back_waist_length":
		return &b.BackWaistLength, true
	case "front_waist_length":
		return &b.FrontWaistLength, true
	case "full_bust":
		return &b.FullBust, true
	case "bust_height":
		return &b.BustHeight, true
	case "half_bust_point_distance":
		return &b.HalfBustPointDistance, true
	case "full_waist":
		return &b.FullWaist, true
	case "small_hip":
		return &b.SmallHip, true
	case "full_hip":
		return &b.FullHip, true
	case "neck_circumference":
		return &b.NeckCircumference, true
	case "half_back_width":
		return &b.HalfBackWidth, true
	case "half_front_width":
		return &b.HalfFrontWidth, true
	case "shoulder_length":
		return &b.ShoulderLength, true
	case "armhole_circumference":
		return &b.ArmholeCircumference, true
	case "underarm_height":
		return &b.UnderarmHeight, true
	case "arm_length":
		return &b.ArmLength, true
	case "upper_arm":
		return &b.UpperArm, true
	case "elbow_height":
		return &b.ElbowHeight, true
	case "wrist":
		return &b.Wrist, true
	case "waist_to_hip":
		return &b.WaistToHip, true
	case "crotch_depth":
		return &b.CrotchDepth, true
	case "crotch_length":
		return &b.CrotchLength, true
	case "waist_to_knee":
		return &b.WaistToKnee, true
	case "waist_to_floor":
		return &b.WaistToFloor, true
	case "side_waist_to_floor":
		return &b.SideWaistToFloor, true
	}
	return nil, false
}

// Map returns the measurements keyed by name.
func (b Body) Map() map[string]float64 {
	res := make(map[string]float64, len(Fields))
	for _, name := range Fields {
		p, _ := b.Field(name)
		res[name] = *p
	}
	return res
}
