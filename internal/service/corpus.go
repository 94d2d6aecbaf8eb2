package service

import (
	"fmt"
	"strings"

	"ghars/internal/catalog"
	"ghars/internal/models"
)

// buildCorpus assembles the static QA corpus: hand-authored general,
// seasonal, and governorate entries, plus an information entry and a care
// entry synthesized for every catalog species.
func buildCorpus(catalogs *catalog.Catalogs) []models.QAEntry {
	corpus := make([]models.QAEntry, 0, len(staticEntries)+2*len(catalogs.Species()))
	corpus = append(corpus, staticEntries...)

	for _, species := range catalogs.Species() {
		corpus = append(corpus, speciesInfoEntry(species), speciesCareEntry(species))
	}
	return corpus
}

func speciesInfoEntry(species models.SpeciesRecord) models.QAEntry {
	req := species.Requirements
	answer := fmt.Sprintf("%s (%s): %s\n\n", species.Name, species.NameEn, species.Description) +
		fmt.Sprintf("الارتفاع: %s\n", species.HeightRange) +
		fmt.Sprintf("احتياجات المياه: %.0f-%.0f مم\n", req.RainfallMin, req.RainfallMax) +
		fmt.Sprintf("درجة الحرارة: %.0f-%.0f°م\n", req.TemperatureMin, req.TemperatureMax) +
		fmt.Sprintf("أفضل وقت للزراعة: %s", species.PlantingTime())

	return models.QAEntry{
		Keywords: []string{strings.ToLower(species.Name), strings.ToLower(species.NameEn), "معلومات", "شجرة"},
		Answer:   answer,
		Category: models.QACategorySpecies,
	}
}

func speciesCareEntry(species models.SpeciesRecord) models.QAEntry {
	tips := species.CareTips
	if len(tips) == 0 {
		tips = []string{"الري المنتظم", "التسميد الموسمي", "التقليم السنوي"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "العناية بشجرة %s:\n", species.Name)
	for _, tip := range tips {
		fmt.Fprintf(&b, "\n• %s", tip)
	}

	return models.QAEntry{
		Keywords: []string{strings.ToLower(species.Name), "عناية", "رعاية", "كيف أعتني"},
		Answer:   b.String(),
		Category: models.QACategorySpecies,
	}
}

var staticEntries = []models.QAEntry{
	{
		Keywords: []string{"ما هي", "أفضل الأشجار", "عمان", "زراعة"},
		Answer: "أفضل الأشجار للزراعة في عمان تشمل: اللبان (شجرة عمان الوطنية)، النخيل، الغاف، السمر، السدر، والمانجو. " +
			"تختلف الأفضلية حسب المنطقة والموسم.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"متى", "أزرع", "وقت الزراعة", "موسم"},
		Answer: "أفضل وقت للزراعة في عمان هو خلال فصلي الخريف (سبتمبر-نوفمبر) والشتاء (ديسمبر-فبراير) " +
			"عندما تكون درجات الحرارة معتدلة والرطوبة مناسبة.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"كم", "كمية المياه", "ري", "أروي"},
		Answer: "تختلف احتياجات الري حسب نوع الشجرة والموسم. بشكل عام: الأشجار الصحراوية تحتاج 20-40 لتر أسبوعياً، " +
			"بينما الأشجار الاستوائية تحتاج 50-80 لتر. يُنصح بالري المنتظم في الصيف.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"تربة", "نوع التربة", "أي تربة"},
		Answer: "عمان تحتوي على أنواع متعددة من التربة: رملية (في الساحل)، جيرية (في الجبال)، وطينية (في الوديان). " +
			"معظم الأشجار العمانية تتكيف مع التربة الرملية والجيرية.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"سماد", "تسميد", "عضوي"},
		Answer: "يُنصح باستخدام السماد العضوي (2-3 كجم للشجرة) مرتين سنوياً: في بداية الربيع وبداية الخريف. " +
			"يمكن استخدام سماد NPK (20-20-20) للأشجار المثمرة.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"مسافة", "المسافات", "زراعة", "بين الأشجار"},
		Answer: "المسافات الموصى بها بين الأشجار: النخيل 6-8 متر، اللبان 4-5 متر، المانجو 8-10 متر، الغاف 5-6 متر. " +
			"تضمن هذه المسافات نمو جيد وتهوية كافية.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"آفات", "أمراض", "حشرات", "مكافحة"},
		Answer: "الآفات الشائعة في عمان: سوسة النخيل الحمراء، حشرة الدوباس، والمن. الوقاية بالتقليم المنتظم والنظافة. " +
			"استخدام المبيدات الحيوية أولاً قبل الكيميائية.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"حرارة", "حار", "حماية", "تظليل"},
		Answer: "في الصيف العماني (45-50°م)، احمِ الشتلات الصغيرة بشبكات التظليل (50-70% ظل). " +
			"اروِ في الصباح الباكر أو المساء. تجنب الزراعة في يونيو-أغسطس.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"ماء", "نقص المياه", "ري بالتنقيط"},
		Answer: "الري بالتنقيط هو الأفضل في عمان: يوفر 40-60% من المياه، يقلل الأعشاب، ويحسن نمو الجذور. " +
			"ضع 2-4 نقاطات لكل شجرة حسب الحجم.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"شتلة", "اختيار الشتلات", "جودة"},
		Answer: "اختر شتلات بارتفاع 60-100 سم، ساق قوي، أوراق خضراء، وجذور متفرعة. تجنب الشتلات الضعيفة أو المصفرة. " +
			"اشترِ من مشاتل معتمدة.",
		Category: models.QACategoryGeneral,
	},
	{
		Keywords: []string{"ربيع", "spring", "مارس", "أبريل", "مايو"},
		Answer: "الربيع (مارس-مايو) في عمان: حرارة معتدلة (25-35°م)، فصل ممتاز لزراعة اللبان، الغاف، السدر، " +
			"والأشجار المزهرة. زد التسميد واهتم بالري المنتظم.",
		Category: models.QACategorySeasonal,
	},
	{
		Keywords: []string{"صيف", "summer", "يونيو", "يوليو", "أغسطس"},
		Answer: "الصيف (يونيو-أغسطس): حرارة شديدة (40-50°م). تجنب الزراعة الجديدة. ركز على الري الصباحي والمسائي، " +
			"استخدم التظليل، وراقب الآفات. مناسب لرعاية الأشجار القائمة فقط.",
		Category: models.QACategorySeasonal,
	},
	{
		Keywords: []string{"خريف", "autumn", "fall", "سبتمبر", "أكتوبر", "نوفمبر"},
		Answer: "الخريف (سبتمبر-نوفمبر): أفضل موسم للزراعة في عمان! حرارة معتدلة (25-35°م)، رطوبة جيدة. " +
			"زرع النخيل، المانجو، الليمون، والأشجار المثمرة. سمّد واهتم بالري.",
		Category: models.QACategorySeasonal,
	},
	{
		Keywords: []string{"شتاء", "winter", "ديسمبر", "يناير", "فبراير"},
		Answer: "الشتاء (ديسمبر-فبراير): بارد نسبياً (15-25°م). ممتاز لزراعة معظم الأنواع. قلل الري (مرة أسبوعياً). " +
			"احذر الصقيع في المناطق الجبلية. وقت مثالي للتقليم.",
		Category: models.QACategorySeasonal,
	},
	{
		Keywords: []string{"مسقط", "muscat"},
		Answer: "مسقط: مناخ ساحلي حار رطب. أفضل الأشجار: النخيل، الغاف، المانجو، الليمون العماني. " +
			"التربة رملية-جيرية. الري المنتظم ضروري في الصيف.",
		Category: models.QACategoryGovernorate,
	},
	{
		Keywords: []string{"ظفار", "dhofar", "صلالة", "salalah"},
		Answer: "ظفار: مناخ فريد مع موسم الخريف (يوليو-سبتمبر). أمطار غزيرة (200-400 مم). " +
			"مثالية للبان، جوز الهند، الموز، والأشجار الاستوائية. رطوبة عالية.",
		Category: models.QACategoryGovernorate,
	},
	{
		Keywords: []string{"الباطنة", "al batinah", "صحار", "sohar"},
		Answer: "الباطنة: سهل ساحلي خصب، تربة طينية. ممتاز للنخيل، المانجو، الموالح، والخضروات. " +
			"مياه وفيرة من الأفلاج. حرارة عالية في الصيف.",
		Category: models.QACategoryGovernorate,
	},
	{
		Keywords: []string{"الداخلية", "al dakhiliyah", "نزوى", "nizwa"},
		Answer: "الداخلية: منطقة جبلية، حرارة معتدلة. مناسبة للرمان، التين، العنب، والورد. تربة جبلية خصبة. " +
			"نظام أفلاج تقليدي للري.",
		Category: models.QACategoryGovernorate,
	},
	{
		Keywords: []string{"الشرقية", "al sharqiyah", "صور", "sur"},
		Answer: "الشرقية: منطقة متنوعة (ساحل + صحراء). زرع النخيل، الغاف، السمر في المناطق الساحلية. " +
			"احذر الرطوبة العالية في الصيف.",
		Category: models.QACategoryGovernorate,
	},
	{
		Keywords: []string{"الظاهرة", "al dhahirah", "عبري", "ibri"},
		Answer: "الظاهرة: منطقة صحراوية حارة جافة. الأشجار الصحراوية مثل الغاف، السمر، السدر هي الأنسب. " +
			"استخدم الري بالتنقيط لتوفير المياه.",
		Category: models.QACategoryGovernorate,
	},
	{
		Keywords: []string{"when", "plant", "palm"},
		Answer: "أفضل وقت لزراعة النخيل في عمان هو الخريف (سبتمبر-نوفمبر): حرارة معتدلة ورطوبة مناسبة لتجذير الفسائل. " +
			"اروِ الفسيلة يومياً في الأسابيع الأولى.",
		Category: models.QACategoryGeneral,
	},
}
