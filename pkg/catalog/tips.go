package catalog

// Tip is one bilingual marketing fact shown while creatives generate.
type Tip struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

var marketingTips = []Tip{
	{Ar: "الإعلانات ذات الوجوه البشرية تحقق تفاعل أعلى بـ 38%", En: "Ads with human faces get 38% higher engagement"},
	{Ar: "اللون الأحمر يزيد الإحساس بالإلحاح", En: "Red color increases sense of urgency"},
	{Ar: "أول 3 ثوان تحدد 70% من نجاح الإعلان", En: "First 3 seconds determine 70% of ad success"},
	{Ar: "الأرقام الفردية (7, 9) أكثر إقناعاً", En: "Odd numbers (7, 9) are more persuasive"},
	{Ar: "التواصل البصري يزيد الثقة بـ 50%", En: "Eye contact increases trust by 50%"},
	{Ar: "الندرة تزيد القيمة المدركة بـ 200%", En: "Scarcity increases perceived value by 200%"},
	{Ar: "القصص تُذكر 22 مرة أكثر من الحقائق", En: "Stories are remembered 22x more than facts"},
	{Ar: "الألوان الدافئة تحفز القرار السريع", En: "Warm colors encourage quick decisions"},
}

// MarketingTips returns the static tips list.
func MarketingTips() []Tip {
	return marketingTips
}
