package cekim

// Static irregular-stem tables. Data, not logic: both engines consult
// these but never mutate them. The sets are the curated standard lists;
// extending them is a data change only.

// softeningRoots maps dictionary roots whose final voiceless stop
// voices before a vowel-initial suffix (git→gid-er). Softening is not
// general across t-final roots (sat→satar), so membership is explicit.
var softeningRoots = map[string]string{
	"git": "gid",
	"et":  "ed",
	"tat": "tad",
	"güt": "güd",
}

// softenedRoots is the reverse mapping, used by deinflection to
// restore the dictionary root (gid→git).
var softenedRoots = map[string]string{
	"gid": "git",
	"ed":  "et",
	"tad": "tat",
	"güd": "güt",
}

// contractionRoots maps roots whose final vowel narrows before -yor
// in the positive present continuous (ye→yi-yor, de→di-yor).
var contractionRoots = map[string]string{
	"ye": "yi",
	"de": "di",
}

// contractedRoots is the reverse mapping for deinflection (yi→ye).
var contractedRoots = map[string]string{
	"yi": "ye",
	"di": "de",
}

// aoristIrRoots lists the monosyllabic roots that take -Ir in the
// aorist instead of the default -Ar for monosyllables (gel→gelir,
// not gelar). The classic thirteen-verb exception list.
var aoristIrRoots = map[string]bool{
	"al":  true,
	"bil": true,
	"bul": true,
	"dur": true,
	"gel": true,
	"gör": true,
	"kal": true,
	"ol":  true,
	"öl":  true,
	"san": true,
	"var": true,
	"ver": true,
	"vur": true,
}

// softenRoot returns the pre-vowel stem of root, consulting the
// irregular table first and falling back to root unchanged.
func softenRoot(root string) string {
	if s, ok := softeningRoots[root]; ok {
		return s
	}
	return root
}

// restoreRoot undoes irregular-stem mutations on a raw deinflected
// root: consonant softening first, then vowel contraction.
func restoreRoot(raw string) string {
	if r, ok := softenedRoots[raw]; ok {
		return r
	}
	if r, ok := contractedRoots[raw]; ok {
		return r
	}
	return raw
}
