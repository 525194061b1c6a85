package gamepath

type patternKey struct {
	ext ExtensionKind
	cat Category
}

// patterns holds the ordered structural patterns per (extension kind, category).
// The first pattern that matches wins; later ones are never tried.
var patterns = map[patternKey][]*Pattern{
	{ExtFont, CategoryFont}: compileAll(
		`common/font/{fontname:*}_{id:d2}[lobby=_lobby].fdt`,
	),

	{ExtTexture, CategoryIcon}: compileAll(
		`ui/icon/{group:d*}[/{lang:a2}][hq=/hq]/{id:d+}[hr=_hr1].tex`,
	),
	{ExtTexture, CategoryMap}: compileAll(
		`ui/map/{id:x4}/{variant:d2}/{=id}{=variant}[{suffix:a1}][_{:a1}].tex`,
	),
	{ExtTexture, CategoryWeapon}: compileAll(
		`chara/weapon/w{id:d4}/obj/body/b{weapon:d4}/texture/v{variant:d2}_w{=id}b{=weapon}[_{:a1}]_{:a1}.tex`,
	),
	{ExtTexture, CategoryMonster}: compileAll(
		`chara/monster/m{monster:d4}/obj/body/b{id:d4}/texture/v{variant:d2}_m{=monster}b{=id}[_{:a1}]_{:a1}.tex`,
	),
	{ExtTexture, CategoryEquipment}: compileAll(
		`chara/equipment/e{id:d4}/texture/v{variant:d2}_c{race:d4}e{=id}_{slot:a3}[_{:a1}]_{:a1}.tex`,
	),
	{ExtTexture, CategoryDemiHuman}: compileAll(
		`chara/demihuman/d{id:d4}/obj/equipment/e{equip:d4}/texture/v{variant:d2}_d{=id}e{=equip}_{slot:a3}[_{:a1}]_{:a1}.tex`,
	),
	{ExtTexture, CategoryAccessory}: compileAll(
		`chara/accessory/a{id:d4}/texture/v{variant:d2}_c{race:d4}a{=id}_{slot:a3}_{:a1}.tex`,
	),
	{ExtTexture, CategoryPlayerCharacter}: compileAll(
		`chara/human/c{race:d4}/obj/{type:a+}/{typeabr:a1}{id:d4}/texture/[minus=--][v{variant:d2}_]c{=race}{=typeabr}{=id}[_{slot:a3}][_{:a1}]_{:a1}.tex`,
		`chara/human/c{race:d4}/obj/{type:a+}/{typeabr:a1}{id:d4}/texture/{:*}`,
		`chara/common/texture/skin{skin:*}.tex`,
		`chara/common/texture/(catchlight=catchlight){:*}.tex`,
		`chara/common/texture/decal_{location:a+}/[{:p1}]decal_{id:d+}.tex`,
	),

	{ExtModel, CategoryWeapon}: compileAll(
		`chara/weapon/w{id:d4}/obj/body/b{weapon:d4}/model/w{=id}b{=weapon}.mdl`,
	),
	{ExtModel, CategoryMonster}: compileAll(
		`chara/monster/m{monster:d4}/obj/body/b{id:d4}/model/m{=monster}b{=id}.mdl`,
	),
	{ExtModel, CategoryEquipment}: compileAll(
		`chara/equipment/e{id:d4}/model/c{race:d4}e{=id}_{slot:a3}.mdl`,
	),
	{ExtModel, CategoryDemiHuman}: compileAll(
		`chara/demihuman/d{id:d4}/obj/equipment/e{equip:d4}/model/d{=id}e{=equip}_{slot:a3}.mdl`,
	),
	{ExtModel, CategoryAccessory}: compileAll(
		`chara/accessory/a{id:d4}/model/c{race:d4}a{=id}_{slot:a3}.mdl`,
	),
	{ExtModel, CategoryPlayerCharacter}: compileAll(
		`chara/human/c{race:d4}/obj/{type:a+}/{typeabr:a1}{id:d4}/model/c{=race}{=typeabr}{=id}_{slot:a3}.mdl`,
	),

	{ExtMaterial, CategoryWeapon}: compileAll(
		`chara/weapon/w{id:d4}/obj/body/b{weapon:d4}/material/v{variant:d4}/mt_w{=id}b{=weapon}_{:a1}.mtrl`,
	),
	{ExtMaterial, CategoryMonster}: compileAll(
		`chara/monster/m{monster:d4}/obj/body/b{id:d4}/material/v{variant:d4}/mt_m{=monster}b{=id}_{:a1}.mtrl`,
	),
	{ExtMaterial, CategoryEquipment}: compileAll(
		`chara/equipment/e{id:d4}/material/v{variant:d4}/mt_c{race:d4}e{=id}_{slot:a3}_{:a1}.mtrl`,
	),
	{ExtMaterial, CategoryDemiHuman}: compileAll(
		`chara/demihuman/d{id:d4}/obj/equipment/e{equip:d4}/material/v{variant:d4}/mt_d{=id}e{=equip}_{slot:a3}_{:a1}.mtrl`,
	),
	{ExtMaterial, CategoryAccessory}: compileAll(
		`chara/accessory/a{id:d4}/material/v{variant:d4}/mt_c{race:d4}a{=id}_{slot:a3}_{:a1}.mtrl`,
	),
	{ExtMaterial, CategoryPlayerCharacter}: compileAll(
		`chara/human/c{race:d4}/obj/{type:a+}/{typeabr:a1}{id:d4}/material[/v{variant:d4}]/mt_c{=race}{=typeabr}{=id}[_{slot:a3}]_{:a1}.mtrl`,
	),

	{ExtImc, CategoryWeapon}: compileAll(
		`chara/weapon/w{id:d4}/obj/body/b{weapon:d4}/b{=weapon}.imc`,
	),
	{ExtImc, CategoryMonster}: compileAll(
		`chara/monster/m{monster:d4}/obj/body/b{id:d4}/b{=id}.imc`,
	),
	{ExtImc, CategoryEquipment}: compileAll(
		`chara/equipment/e{id:d4}/e{=id}.imc`,
	),
	{ExtImc, CategoryDemiHuman}: compileAll(
		`chara/demihuman/d{id:d4}/obj/equipment/e{equip:d4}/e{=equip}.imc`,
	),
	{ExtImc, CategoryAccessory}: compileAll(
		`chara/accessory/a{id:d4}/a{=id}.imc`,
	),

	{ExtVfx, CategoryWeapon}: compileAll(
		`chara/weapon/w{id:d4}/obj/body/b{weapon:d4}/vfx/eff/vw{effect:d4}.avfx`,
	),
	{ExtVfx, CategoryMonster}: compileAll(
		`chara/monster/m{monster:d4}/obj/body/b{id:d4}/vfx/eff/vm{effect:d4}.avfx`,
	),
	{ExtVfx, CategoryDemiHuman}: compileAll(
		`chara/demihuman/d{id:d4}/obj/equipment/e{equip:d4}/vfx/eff/ve{effect:d4}.avfx`,
	),

	{ExtSkeleton, CategoryWeapon}: compileAll(
		`chara/weapon/w{id:d4}/skeleton/base/b{weapon:d4}/skl_w{=id}b{=weapon}.sklb`,
	),
	{ExtSkeleton, CategoryMonster}: compileAll(
		`chara/monster/m{monster:d4}/skeleton/base/b{id:d4}/skl_m{=monster}b{=id}.sklb`,
	),
	{ExtSkeleton, CategoryDemiHuman}: compileAll(
		`chara/demihuman/d{id:d4}/skeleton/base/b{equip:d4}/skl_d{=id}b{=equip}.sklb`,
	),
	{ExtSkeleton, CategoryPlayerCharacter}: compileAll(
		`chara/human/c{race:d4}/skeleton/{type:a+}/{typeabr:a1}{id:d4}/skl_c{=race}{=typeabr}{=id}.sklb`,
	),
}

var (
	actionTimeline  = MustCompile(`chara/action/{key:*}.tmb`)
	actionAnimation = MustCompile(`chara/human/c0101/animation/a0001/{:s+}/{key:*}.pap`)
)

func compileAll(templates ...string) []*Pattern {
	out := make([]*Pattern, len(templates))
	for i, t := range templates {
		out[i] = MustCompile(t)
	}
	return out
}

// Patterns returns the ordered patterns registered for a pair. The slice must not be modified.
func Patterns(ext ExtensionKind, cat Category) []*Pattern {
	return patterns[patternKey{ext, cat}]
}

// MatchPattern tries the patterns of a pair in order and returns the captures of the first
// one that matches the whole path.
func MatchPattern(ext ExtensionKind, cat Category, path string) (*Pattern, Captures, bool) {
	for _, p := range Patterns(ext, cat) {
		if caps, ok := p.Match(path); ok {
			return p, caps, true
		}
	}
	return nil, nil, false
}
