package moderation

// Fixed vocabulary lists matched as case-insensitive substrings. Both lists
// run over every text regardless of the caller's language hint.

var englishWordlist = []string{
	"scam",
	"fraudster",
	"go kill yourself",
	"kys",
	"retard",
	"whore",
	"slut",
	"nigger",
	"faggot",
	"send me money",
	"guaranteed admission for cash",
	"buy certificate",
	"fake degree",
}

var arabicWordlist = []string{
	"نصب واحتيال",
	"يا حيوان",
	"يا كلب",
	"يا غبي",
	"عاهرة",
	"ابن الكلب",
	"شهادة مزورة",
	"قبول مضمون بفلوس",
	"ارسل لي المال",
}
