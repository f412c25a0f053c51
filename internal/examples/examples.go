// Package examples holds the static example store: sample sentences for the
// UI, few-shot annotated demonstrations per analysis task, and the task
// prompts. Everything here is immutable and loaded once at startup.
package examples

// Task enumerates the supported analysis tasks.
type Task string

const (
	TaskGrammar  Task = "grammar"
	TaskPhrase   Task = "phrase"
	TaskKeyword  Task = "keyword"
	TaskCombined Task = "combined"
)

// Language selects the gloss language the model is asked to answer in.
type Language string

const (
	LangChinese Language = "zh"
	LangEnglish Language = "en"
)

// Annotation is one labeled span of an example sentence. Start and End are
// rune offsets into Text, end exclusive.
type Annotation struct {
	Class      string            `json:"class"`
	Text       string            `json:"text"`
	Start      int               `json:"start"`
	End        int               `json:"end"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Sentence is a fully annotated demonstration used for few-shot prompting.
type Sentence struct {
	Text        string       `json:"text"`
	Annotations []Annotation `json:"annotations"`
}

// Sample is a sentence the UI offers as a one-click starting point.
type Sample struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Tasks lists the supported tasks in display order.
func Tasks() []Task {
	return []Task{TaskGrammar, TaskKeyword, TaskPhrase, TaskCombined}
}

// Valid reports whether t names a supported task.
func (t Task) Valid() bool {
	switch t {
	case TaskGrammar, TaskPhrase, TaskKeyword, TaskCombined:
		return true
	}
	return false
}

// Label returns the task's display label.
func (t Task) Label(lang Language) string {
	labels := map[Task]map[Language]string{
		TaskGrammar:  {LangChinese: "语法成分分析", LangEnglish: "Grammar components"},
		TaskPhrase:   {LangChinese: "固定搭配识别", LangEnglish: "Fixed phrases"},
		TaskKeyword:  {LangChinese: "重点单词标记", LangEnglish: "Key vocabulary"},
		TaskCombined: {LangChinese: "综合分析", LangEnglish: "Combined analysis"},
	}
	if l, ok := labels[t][lang]; ok {
		return l
	}
	return string(t)
}

// Samples returns the built-in sample sentences with their source labels.
func Samples() []Sample {
	return []Sample{
		{
			Text:   "I can share another truth with you. Because of a global supply chain shortage, there are not enough folding chairs. So half of you had to sit on blankets today. Fortunately, our staff, who are amazing, creative, resilient, and made this commencement become a reality.",
			Source: "commencement address",
		},
		{
			Text:   "Photosynthesis is the biological process by which plants convert light energy into chemical energy, creating oxygen as a byproduct, which supports life on Earth.",
			Source: "biology textbook",
		},
		{
			Text:   "The algorithm demonstrates remarkable efficiency in processing large datasets, utilizing advanced heuristics to minimize computational complexity while maintaining high accuracy.",
			Source: "computer science paper",
		},
		{
			Text:   "Despite the heavy rain and strong winds, the dedicated team continued their rescue mission, determined to save every stranded villager before nightfall.",
			Source: "news report",
		},
		{
			Text:   "Understanding quantum mechanics requires abandoning classical intuition, as particles exist in superposition states until observed, challenging our fundamental perception of reality.",
			Source: "popular science",
		},
		{
			Text:   "The quick brown fox jumps over the lazy dog.",
			Source: "pangram",
		},
	}
}

// ForTask returns the few-shot demonstrations for a task.
func ForTask(t Task) []Sentence {
	switch t {
	case TaskGrammar:
		return grammarExamples()
	case TaskPhrase:
		return phraseExamples()
	case TaskKeyword:
		return keywordExamples()
	case TaskCombined:
		return combinedExamples()
	}
	return nil
}

// grammarExamples demonstrates sentence-component annotation: subject, verb,
// objects, adverbial. All intervals are exact rune offsets.
func grammarExamples() []Sentence {
	return []Sentence{
		{
			Text: "The quick brown fox jumps over the lazy dog.",
			Annotations: []Annotation{
				{
					Class: "subject", Text: "The quick brown fox", Start: 0, End: 19,
					Attributes: map[string]string{"type": "noun_phrase", "role": "主语", "description": "句子的执行者"},
				},
				{
					Class: "verb", Text: "jumps", Start: 20, End: 25,
					Attributes: map[string]string{"type": "intransitive_verb", "tense": "present", "role": "谓语", "description": "描述动作"},
				},
				{
					Class: "adverbial", Text: "over the lazy dog", Start: 26, End: 43,
					Attributes: map[string]string{"type": "prepositional_phrase", "role": "状语", "description": "修饰动词，表示地点"},
				},
			},
		},
		{
			Text: "She gave me a beautiful gift yesterday.",
			Annotations: []Annotation{
				{
					Class: "subject", Text: "She", Start: 0, End: 3,
					Attributes: map[string]string{"type": "pronoun", "role": "主语", "description": "句子的执行者"},
				},
				{
					Class: "verb", Text: "gave", Start: 4, End: 8,
					Attributes: map[string]string{"type": "transitive_verb", "tense": "past", "role": "谓语", "description": "描述动作"},
				},
				{
					Class: "indirect_object", Text: "me", Start: 9, End: 11,
					Attributes: map[string]string{"type": "pronoun", "role": "间接宾语", "description": "动作的接受者"},
				},
				{
					Class: "direct_object", Text: "a beautiful gift", Start: 12, End: 28,
					Attributes: map[string]string{"type": "noun_phrase", "role": "直接宾语", "description": "动作的对象"},
				},
				{
					Class: "adverbial", Text: "yesterday", Start: 29, End: 38,
					Attributes: map[string]string{"type": "time_adverb", "role": "状语", "description": "修饰动词，表示时间"},
				},
			},
		},
	}
}

// phraseExamples demonstrates phrasal verbs, collocations, and idioms.
func phraseExamples() []Sentence {
	return []Sentence{
		{
			Text: "I'm looking forward to hearing from you soon.",
			Annotations: []Annotation{
				{
					Class: "phrasal_verb", Text: "looking forward to", Start: 4, End: 22,
					Attributes: map[string]string{"type": "固定搭配", "meaning": "期待", "usage": "look forward to + 动名词", "level": "中级"},
				},
				{
					Class: "phrasal_verb", Text: "hearing from", Start: 23, End: 35,
					Attributes: map[string]string{"type": "动词短语", "meaning": "收到...的来信", "usage": "hear from + 人", "level": "基础"},
				},
			},
		},
		{
			Text: "She decided to give up smoking for health reasons.",
			Annotations: []Annotation{
				{
					Class: "phrasal_verb", Text: "give up", Start: 15, End: 22,
					Attributes: map[string]string{"type": "短语动词", "meaning": "放弃", "usage": "give up + 动名词/名词", "level": "基础"},
				},
			},
		},
		{
			Text: "It's raining cats and dogs outside.",
			Annotations: []Annotation{
				{
					Class: "idiom", Text: "raining cats and dogs", Start: 5, End: 26,
					Attributes: map[string]string{"type": "习惯用语", "meaning": "倾盆大雨", "usage": "形容雨下得很大", "level": "高级"},
				},
			},
		},
	}
}

// keywordExamples demonstrates key-vocabulary annotation.
func keywordExamples() []Sentence {
	return []Sentence{
		{
			Text: "Photosynthesis is the biological process by which plants convert light energy into chemical energy.",
			Annotations: []Annotation{
				{
					Class: "key_word", Text: "Photosynthesis", Start: 0, End: 14,
					Attributes: map[string]string{"level": "高级", "type": "学术词汇", "meaning": "光合作用", "subject": "生物学", "importance": "高"},
				},
				{
					Class: "key_word", Text: "biological", Start: 22, End: 32,
					Attributes: map[string]string{"level": "中级", "type": "形容词", "meaning": "生物学的", "subject": "科学", "importance": "中"},
				},
				{
					Class: "key_word", Text: "convert", Start: 57, End: 64,
					Attributes: map[string]string{"level": "中级", "type": "动词", "meaning": "转换，转化", "subject": "通用", "importance": "中"},
				},
			},
		},
		{
			Text: "The algorithm demonstrates remarkable efficiency in processing large datasets.",
			Annotations: []Annotation{
				{
					Class: "key_word", Text: "algorithm", Start: 4, End: 13,
					Attributes: map[string]string{"level": "高级", "type": "专业术语", "meaning": "算法", "subject": "计算机科学", "importance": "高"},
				},
				{
					Class: "key_word", Text: "efficiency", Start: 38, End: 48,
					Attributes: map[string]string{"level": "中级", "type": "名词", "meaning": "效率", "subject": "通用", "importance": "中"},
				},
			},
		},
	}
}

// combinedExamples demonstrates overlapping annotation: the same words can be
// both a grammar component and a phrase ("looked up" below).
func combinedExamples() []Sentence {
	return []Sentence{
		{
			Text: "The talented student looked up the difficult vocabulary in the dictionary.",
			Annotations: []Annotation{
				{
					Class: "subject", Text: "The talented student", Start: 0, End: 20,
					Attributes: map[string]string{"type": "noun_phrase", "role": "主语"},
				},
				{
					Class: "verb", Text: "looked up", Start: 21, End: 30,
					Attributes: map[string]string{"type": "phrasal_verb", "role": "谓语"},
				},
				{
					Class: "object", Text: "the difficult vocabulary", Start: 31, End: 55,
					Attributes: map[string]string{"type": "noun_phrase", "role": "宾语"},
				},
				{
					Class: "phrasal_verb", Text: "looked up", Start: 21, End: 30,
					Attributes: map[string]string{"type": "短语动词", "meaning": "查阅", "level": "基础"},
				},
				{
					Class: "key_word", Text: "vocabulary", Start: 45, End: 55,
					Attributes: map[string]string{"level": "中级", "type": "名词", "meaning": "词汇", "importance": "高"},
				},
			},
		},
	}
}
