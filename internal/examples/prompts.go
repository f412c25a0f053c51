package examples

// Prompt returns the task description sent to the model, in the requested
// gloss language.
func Prompt(t Task, lang Language) string {
	if lang == LangEnglish {
		return englishPrompts[t]
	}
	return chinesePrompts[t]
}

var chinesePrompts = map[Task]string{
	TaskGrammar: `分析英语句子的语法结构，提取以下成分：

1. 主语 (subject): 句子的执行者或主题
2. 谓语 (verb): 描述动作或状态的动词
3. 宾语 (object/direct_object/indirect_object): 动作的接受者或对象
4. 定语 (attributive): 修饰名词的成分
5. 状语 (adverbial): 修饰动词、形容词或句子的成分
6. 补语 (complement): 补充说明主语或宾语的成分

要求：
- 必须提供精确的 start 和 end 字符位置，这对于准确高亮非常重要
- 准确识别每个成分在原文中的位置
- 为每个成分提供中文释义
- 说明成分的语法功能
- 使用完整的原文片段，不要截断`,

	TaskPhrase: `识别英语句子中的固定搭配和短语：

1. 短语动词 (phrasal_verb): 如 look up, give up, take off 等
2. 固定搭配 (collocation): 如 make a decision, take a break 等
3. 习惯用语 (idiom): 如 break the ice, piece of cake 等
4. 介词短语 (prepositional_phrase): 常用的介词搭配

要求：
- 必须提供精确的 start 和 end 字符位置，对于重复短语，每个位置都要独立标注
- 识别完整的短语，不要遗漏介词或副词
- 提供中文释义和用法说明
- 标注难度等级（基础/中级/高级）
- 说明使用场景和注意事项`,

	TaskKeyword: `标记句子中的重点单词和核心词汇：

1. 高级词汇: 高中及以上水平的词汇
2. 学术词汇: 学科专业术语
3. 核心动词: 重要的行为动词
4. 关键名词: 主题相关的核心名词

要求：
- 必须提供精确的 start 和 end 字符位置，对于重复单词，每次出现都要标注
- 只标记重要的词汇，不要标记基础词汇（如 the, is, a 等）
- 提供中文释义
- 标注难度等级和学科领域
- 说明重要程度（高/中/低）`,

	TaskCombined: `对英语句子进行全面的语法和词汇分析：

1. 语法成分: 主语、谓语、宾语、状语等
2. 固定搭配: 短语动词、习惯用语等
3. 重点词汇: 高级词汇、专业术语等

要求：
- 必须为所有提取提供精确的 start 和 end 字符位置
- 全面分析句子结构和关键内容
- 为每个提取的内容提供详细的属性说明
- 使用中文进行解释
- 标注难度等级和重要程度
- 对于重复内容或重叠标注，确保每个都有独立的位置信息`,
}

var englishPrompts = map[Task]string{
	TaskGrammar: `Analyze the grammatical structure of the English sentence and extract:

1. subject: the actor or topic of the sentence
2. verb: the verb describing the action or state
3. object / direct_object / indirect_object: the receiver or target of the action
4. attributive: modifiers of nouns
5. adverbial: modifiers of verbs, adjectives, or the sentence
6. complement: parts completing the subject or object

Requirements:
- Always provide exact start and end character positions; they drive the highlighting
- Locate each component precisely in the original text
- Explain each component's grammatical function in English
- Quote complete fragments from the original text, never truncate`,

	TaskPhrase: `Identify fixed phrases and collocations in the English sentence:

1. phrasal_verb: e.g. look up, give up, take off
2. collocation: e.g. make a decision, take a break
3. idiom: e.g. break the ice, piece of cake
4. prepositional_phrase: common preposition patterns

Requirements:
- Always provide exact start and end character positions; annotate every occurrence of repeated phrases separately
- Capture complete phrases, never drop the preposition or particle
- Explain the meaning and usage in English
- Tag a difficulty level (basic/intermediate/advanced)
- Note usage contexts and caveats`,

	TaskKeyword: `Mark the key words and core vocabulary in the sentence:

1. advanced vocabulary: upper-intermediate and above
2. academic vocabulary: subject-specific terminology
3. core verbs: important action verbs
4. key nouns: nouns central to the topic

Requirements:
- Always provide exact start and end character positions; annotate every occurrence of repeated words
- Only mark significant vocabulary, skip basic words such as the, is, a
- Give an English definition
- Tag a difficulty level and subject area
- Note the importance (high/medium/low)`,

	TaskCombined: `Perform a complete grammar and vocabulary analysis of the English sentence:

1. grammar components: subject, verb, object, adverbial, and similar
2. fixed phrases: phrasal verbs, idioms, and similar
3. key vocabulary: advanced words, technical terms

Requirements:
- Provide exact start and end character positions for every extraction
- Analyze structure and key content comprehensively
- Attach detailed attributes to each extraction, explained in English
- Tag difficulty and importance
- For repeated or overlapping annotations, give each its own positions`,
}
