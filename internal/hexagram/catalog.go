package hexagram

import "liuyao/internal/wuxing"

func entry(code, name, meaning string, element wuxing.Element, shi, ying int, yang bool, palace, inner, outer Trigram, structure string) Info {
	return Info{
		Code: code, Name: name, Meaning: meaning, Element: element,
		Shi: shi, Ying: ying, Yang: yang,
		Palace: palace, Inner: inner, Outer: outer, Structure: structure,
	}
}

// catalog maps every 6-bit code to its hexagram. All 64 permutations exist;
// a unit test guards the bijection.
var catalog = map[string]Info{
	// 乾宮（金）
	"111111": entry("111111", "乾為天", "剛健中正", wuxing.Metal, 6, 3, true, Qian, Qian, Qian, "本宮(六沖)"),
	"011111": entry("011111", "天風姤", "陰陽相遇", wuxing.Metal, 1, 4, true, Qian, Xun, Qian, ""),
	"001111": entry("001111", "天山遁", "退避保全", wuxing.Metal, 2, 5, true, Qian, Gen, Qian, ""),
	"000111": entry("000111", "天地否", "閉塞不通", wuxing.Metal, 3, 6, true, Qian, Kun, Qian, "六合"),
	"000011": entry("000011", "風地觀", "觀察民情", wuxing.Metal, 4, 1, true, Qian, Kun, Xun, ""),
	"000001": entry("000001", "山地剝", "陰盛陽衰", wuxing.Metal, 5, 2, true, Qian, Kun, Gen, ""),
	"000101": entry("000101", "火地晉", "光明晉升", wuxing.Metal, 4, 1, true, Qian, Kun, Li, "游魂"),
	"111101": entry("111101", "火天大有", "昌隆富有", wuxing.Metal, 3, 6, true, Qian, Qian, Li, "歸魂"),

	// 坎宮（水）
	"010010": entry("010010", "坎為水", "險陷重重", wuxing.Water, 6, 3, true, Kan, Kan, Kan, "本宮(六沖)"),
	"110010": entry("110010", "水澤節", "節制有度", wuxing.Water, 1, 4, true, Kan, Dui, Kan, "六合"),
	"100010": entry("100010", "水雷屯", "初生艱難", wuxing.Water, 2, 5, true, Kan, Zhen, Kan, ""),
	"101010": entry("101010", "水火既濟", "事已完成", wuxing.Water, 3, 6, true, Kan, Li, Kan, ""),
	"101110": entry("101110", "澤火革", "變革創新", wuxing.Water, 4, 1, true, Kan, Li, Dui, ""),
	"101100": entry("101100", "雷火豐", "盛大光明", wuxing.Water, 5, 2, true, Kan, Li, Zhen, ""),
	"101000": entry("101000", "地火明夷", "光明受傷", wuxing.Water, 4, 1, true, Kan, Li, Kun, "游魂"),
	// 師 carries the same inverted trigram fields as 渙, 同人 and 歸妹; the
	// palace pillar data derives from these fields as recorded, not from the
	// line bits.
	"010000": entry("010000", "地水師", "興師動眾", wuxing.Water, 3, 6, true, Kan, Kun, Kan, "歸魂"),

	// 艮宮（土）
	"001001": entry("001001", "艮為山", "靜止不動", wuxing.Earth, 6, 3, true, Gen, Gen, Gen, "本宮(六沖)"),
	"101001": entry("101001", "山火賁", "文飾美化", wuxing.Earth, 1, 4, true, Gen, Li, Gen, "六合"),
	"111001": entry("111001", "山天大畜", "積蓄力量", wuxing.Earth, 2, 5, true, Gen, Qian, Gen, ""),
	"110001": entry("110001", "山澤損", "減損之道", wuxing.Earth, 3, 6, true, Gen, Dui, Gen, ""),
	"110101": entry("110101", "火澤睽", "意見相左", wuxing.Earth, 4, 1, true, Gen, Dui, Li, ""),
	"110111": entry("110111", "天澤履", "謹慎行事", wuxing.Earth, 5, 2, true, Gen, Dui, Qian, ""),
	"110011": entry("110011", "風澤中孚", "誠信立身", wuxing.Earth, 4, 1, true, Gen, Dui, Xun, "游魂"),
	"001011": entry("001011", "風山漸", "循序漸進", wuxing.Earth, 3, 6, true, Gen, Gen, Xun, "歸魂"),

	// 震宮（木）
	"100100": entry("100100", "震為雷", "震動奮發", wuxing.Wood, 6, 3, true, Zhen, Zhen, Zhen, "本宮(六沖)"),
	"000100": entry("000100", "雷地豫", "安樂警惕", wuxing.Wood, 1, 4, true, Zhen, Kun, Zhen, "六合"),
	"010100": entry("010100", "雷水解", "解除困境", wuxing.Wood, 2, 5, true, Zhen, Kan, Zhen, ""),
	"011100": entry("011100", "雷風恒", "恒久之道", wuxing.Wood, 3, 6, true, Zhen, Xun, Zhen, ""),
	"011000": entry("011000", "地風升", "步步高升", wuxing.Wood, 4, 1, true, Zhen, Xun, Kun, ""),
	"011010": entry("011010", "水風井", "滋養不窮", wuxing.Wood, 5, 2, true, Zhen, Xun, Kan, ""),
	"011110": entry("011110", "澤風大過", "非常行動", wuxing.Wood, 4, 1, true, Zhen, Xun, Dui, "游魂"),
	"100110": entry("100110", "澤雷隨", "隨從之道", wuxing.Wood, 3, 6, true, Zhen, Zhen, Dui, "歸魂"),

	// 巽宮（木）
	"011011": entry("011011", "巽為風", "謙遜柔順", wuxing.Wood, 6, 3, false, Xun, Xun, Xun, "本宮(六沖)"),
	"111011": entry("111011", "風天小畜", "積蓄力量", wuxing.Wood, 1, 4, false, Xun, Qian, Xun, ""),
	"101011": entry("101011", "風火家人", "家庭倫理", wuxing.Wood, 2, 5, false, Xun, Li, Xun, ""),
	"100011": entry("100011", "風雷益", "增益之道", wuxing.Wood, 3, 6, false, Xun, Zhen, Xun, ""),
	"100111": entry("100111", "天雷無妄", "不可妄為", wuxing.Wood, 4, 1, false, Xun, Zhen, Qian, "六沖"),
	"100101": entry("100101", "火雷噬嗑", "排除障礙", wuxing.Wood, 5, 2, false, Xun, Zhen, Li, ""),
	"100001": entry("100001", "山雷頤", "頤養之道", wuxing.Wood, 4, 1, false, Xun, Zhen, Gen, "游魂"),
	"011001": entry("011001", "山風蠱", "整治腐敗", wuxing.Wood, 3, 6, false, Xun, Xun, Gen, "歸魂"),

	// 離宮（火）
	"101101": entry("101101", "離為火", "光明美麗", wuxing.Fire, 6, 3, false, Li, Li, Li, "本宮(六沖)"),
	"001101": entry("001101", "火山旅", "行旅之道", wuxing.Fire, 1, 4, false, Li, Gen, Li, "六合"),
	"011101": entry("011101", "火風鼎", "穩重圖新", wuxing.Fire, 2, 5, false, Li, Xun, Li, ""),
	"010101": entry("010101", "火水未濟", "事未完成", wuxing.Fire, 3, 6, false, Li, Kan, Li, ""),
	"010001": entry("010001", "山水蒙", "啟蒙教育", wuxing.Fire, 4, 1, false, Li, Kan, Gen, ""),
	"010011": entry("010011", "風水渙", "渙散分離", wuxing.Fire, 5, 2, false, Li, Xun, Kan, ""),
	"010111": entry("010111", "天水訟", "爭訟糾紛", wuxing.Fire, 4, 1, false, Li, Kan, Qian, "游魂"),
	"101111": entry("101111", "天火同人", "同心協力", wuxing.Fire, 3, 6, false, Li, Qian, Li, "歸魂"),

	// 坤宮（土）
	"000000": entry("000000", "坤為地", "厚德載物", wuxing.Earth, 6, 3, false, Kun, Kun, Kun, "本宮(六沖)"),
	"100000": entry("100000", "地雷復", "陽氣復歸", wuxing.Earth, 1, 4, false, Kun, Zhen, Kun, "六合"),
	"110000": entry("110000", "地澤臨", "督導視察", wuxing.Earth, 2, 5, false, Kun, Dui, Kun, ""),
	"111000": entry("111000", "地天泰", "天地交泰", wuxing.Earth, 3, 6, false, Kun, Qian, Kun, "六合"),
	"111100": entry("111100", "雷天大壯", "強盛壯大", wuxing.Earth, 4, 1, false, Kun, Qian, Zhen, "六沖"),
	"111110": entry("111110", "澤天夬", "果斷決策", wuxing.Earth, 5, 2, false, Kun, Qian, Dui, ""),
	"111010": entry("111010", "水天需", "耐心等待", wuxing.Earth, 4, 1, false, Kun, Qian, Kan, "游魂"),
	"000010": entry("000010", "水地比", "親和依附", wuxing.Earth, 3, 6, false, Kun, Kun, Kan, "歸魂"),

	// 兌宮（金）
	"110110": entry("110110", "兌為澤", "喜悅溝通", wuxing.Metal, 6, 3, false, Dui, Dui, Dui, "本宮(六沖)"),
	"010110": entry("010110", "澤水困", "困境求生", wuxing.Metal, 1, 4, false, Dui, Kan, Dui, "六合"),
	"000110": entry("000110", "澤地萃", "人才薈萃", wuxing.Metal, 2, 5, false, Dui, Kun, Dui, ""),
	"001110": entry("001110", "澤山咸", "感應相知", wuxing.Metal, 3, 6, false, Dui, Gen, Dui, ""),
	"001010": entry("001010", "水山蹇", "艱難險阻", wuxing.Metal, 4, 1, false, Dui, Gen, Kan, ""),
	"001000": entry("001000", "地山謙", "謙虛美德", wuxing.Metal, 5, 2, false, Dui, Gen, Kun, ""),
	"001100": entry("001100", "雷山小過", "小有過失", wuxing.Metal, 4, 1, false, Dui, Gen, Zhen, "游魂"),
	"110100": entry("110100", "雷澤歸妹", "婚嫁之道", wuxing.Metal, 3, 6, false, Dui, Zhen, Dui, "歸魂"),
}

// palaceOrder lists each palace's eight hexagrams in the traditional
// derivation sequence (pure hexagram first, 游魂 seventh, 歸魂 last).
var palaceOrder = map[Trigram][]string{
	Qian: {"111111", "011111", "001111", "000111", "000011", "000001", "000101", "111101"},
	Kan:  {"010010", "110010", "100010", "101010", "101110", "101100", "101000", "010000"},
	Gen:  {"001001", "101001", "111001", "110001", "110101", "110111", "110011", "001011"},
	Zhen: {"100100", "000100", "010100", "011100", "011000", "011010", "011110", "100110"},
	Xun:  {"011011", "111011", "101011", "100011", "100111", "100101", "100001", "011001"},
	Li:   {"101101", "001101", "011101", "010101", "010001", "010011", "010111", "101111"},
	Kun:  {"000000", "100000", "110000", "111000", "111100", "111110", "111010", "000010"},
	Dui:  {"110110", "010110", "000110", "001110", "001010", "001000", "001100", "110100"},
}
