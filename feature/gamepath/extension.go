package gamepath

import "strings"

// extensionKinds is the fixed extension table. Keys include the leading dot.
var extensionKinds = map[string]ExtensionKind{
	".mdl":  ExtModel,
	".tex":  ExtTexture,
	".mtrl": ExtMaterial,
	".atex": ExtAnimation,
	".avfx": ExtVfx,
	".scd":  ExtSound,
	".imc":  ExtImc,
	".pap":  ExtPap,
	".eqp":  ExtMetaInfo,
	".eqdp": ExtMetaInfo,
	".est":  ExtMetaInfo,
	".exd":  ExtMetaInfo,
	".exh":  ExtMetaInfo,
	".shpk": ExtShader,
	".shcd": ExtShader,
	".fdt":  ExtFont,
	".envb": ExtEnvironment,
	".sklb": ExtSkeleton,
	".skp":  ExtSkeletonParameter,
	".eid":  ExtElementID,
	".phyb": ExtSkeletonPhysicsBinary,
}

// Extension returns the substring from the last dot, or "" when the path has none.
func Extension(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return path[idx:]
}

// ExtensionKindOf derives the extension kind of a path.
func ExtensionKindOf(path string) ExtensionKind {
	return extensionKinds[Extension(path)]
}
