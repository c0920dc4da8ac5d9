package service

// RuleKind 成就规则类型
type RuleKind int

const (
	// RuleStreak 连续打卡类：谓词 + 连续天数阈值
	RuleStreak RuleKind = iota
	// RuleCumulative 累计类：对历史上某数值列求和比阈值
	RuleCumulative
)

// AchievementDef 成就定义
// 固定目录顺序遍历，不做按名字的动态分发
type AchievementDef struct {
	ID        string
	Title     string
	Kind      RuleKind
	Predicate ProgressPredicate // 仅 RuleStreak 使用
	Column    string            // 仅 RuleCumulative 使用
	Threshold float64
}

// Catalogue 成就目录
// 连续类阈值都是 21 天；累计类直接对数据库列求和
var Catalogue = []AchievementDef{
	{
		ID:        "consistent",
		Title:     "Барқарорлик", // 连续 21 天有积分
		Kind:      RuleStreak,
		Predicate: AnyActivity,
		Threshold: 21,
	},
	{
		ID:        "perfectionist",
		Title:     "Мукаммал", // 连续 21 天满分
		Kind:      RuleStreak,
		Predicate: PerfectDay,
		Threshold: 21,
	},
	{
		ID:        "early_riser",
		Title:     "Эрта турувчи", // 连续 21 天早起
		Kind:      RuleStreak,
		Predicate: WakeUpDone,
		Threshold: 21,
	},
	{
		ID:        "reader",
		Title:     "Китобхон", // 累计阅读 6000 页
		Kind:      RuleCumulative,
		Column:    "pages_read",
		Threshold: 6000,
	},
	{
		ID:        "athlete",
		Title:     "Спортчи", // 累计 100 公里
		Kind:      RuleCumulative,
		Column:    "distance_km",
		Threshold: 100,
	},
}
