package services

import (
	"fmt"
	"strings"
)

// buildGuidePrompt assembles the instruction sent to the model. The JSON
// skeleton pre-expands one itinerary entry per day (numbered 1..days) so the
// model only fills values instead of inventing structure.
func buildGuidePrompt(city string, budget, days int, styleDescription string) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "请为我生成一份详细的%s穷游攻略，具体要求如下：\n", city)
	fmt.Fprintf(&prompt, "- 目的地：%s\n", city)
	fmt.Fprintf(&prompt, "- 预算：¥%d\n", budget)
	fmt.Fprintf(&prompt, "- 旅游天数：%d天\n", days)
	fmt.Fprintf(&prompt, "- 旅行风格：%s\n\n", styleDescription)

	prompt.WriteString("请严格按照以下JSON格式返回，不要使用markdown代码块，直接返回纯JSON：\n\n")

	prompt.WriteString("{\n")
	prompt.WriteString("  \"cityOverview\": {\n")
	prompt.WriteString("    \"title\": \"城市概况\",\n")
	fmt.Fprintf(&prompt, "    \"description\": \"结合旅行风格简要介绍%s的特色\",\n", city)
	prompt.WriteString("    \"highlights\": [\"特色1\", \"特色2\", \"特色3\"]\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"budgetBreakdown\": {\n")
	prompt.WriteString("    \"title\": \"预算分配\",\n")
	fmt.Fprintf(&prompt, "    \"total\": %d,\n", budget)
	prompt.WriteString("    \"items\": [\n")
	prompt.WriteString("      {\"category\": \"交通\", \"amount\": 具体金额, \"percentage\": 百分比, \"description\": \"具体说明\"},\n")
	prompt.WriteString("      {\"category\": \"住宿\", \"amount\": 具体金额, \"percentage\": 百分比, \"description\": \"具体说明\"},\n")
	prompt.WriteString("      {\"category\": \"餐饮\", \"amount\": 具体金额, \"percentage\": 百分比, \"description\": \"具体说明\"},\n")
	prompt.WriteString("      {\"category\": \"景点\", \"amount\": 具体金额, \"percentage\": 百分比, \"description\": \"具体说明\"},\n")
	prompt.WriteString("      {\"category\": \"其他\", \"amount\": 具体金额, \"percentage\": 百分比, \"description\": \"具体说明\"}\n")
	prompt.WriteString("    ]\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"itinerary\": {\n")
	prompt.WriteString("    \"title\": \"推荐行程\",\n")
	prompt.WriteString("    \"days\": [\n")
	for day := 1; day <= days; day++ {
		prompt.WriteString("      {\n")
		fmt.Fprintf(&prompt, "        \"day\": %d,\n", day)
		fmt.Fprintf(&prompt, "        \"theme\": \"第%d天主题\",\n", day)
		prompt.WriteString("        \"activities\": [\n")
		prompt.WriteString("          {\"time\": \"具体时间\", \"activity\": \"活动\", \"cost\": \"¥XX或免费\", \"tips\": \"小贴士\"}\n")
		prompt.WriteString("        ]\n")
		if day < days {
			prompt.WriteString("      },\n")
		} else {
			prompt.WriteString("      }\n")
		}
	}
	prompt.WriteString("    ]\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"attractions\": {\n")
	prompt.WriteString("    \"title\": \"必游景点\",\n")
	prompt.WriteString("    \"items\": [\n")
	prompt.WriteString("      {\"name\": \"景点名\", \"cost\": \"¥XX或免费\", \"rating\": \"推荐指数\", \"description\": \"简介\", \"tips\": \"游玩建议\"}\n")
	prompt.WriteString("    ]\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"food\": {\n")
	prompt.WriteString("    \"title\": \"美食攻略\",\n")
	prompt.WriteString("    \"items\": [\n")
	prompt.WriteString("      {\"name\": \"美食名\", \"price\": \"¥XX\", \"location\": \"地点\", \"description\": \"描述\"}\n")
	prompt.WriteString("    ]\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"accommodation\": {\n")
	prompt.WriteString("    \"title\": \"住宿建议\",\n")
	prompt.WriteString("    \"items\": [\n")
	prompt.WriteString("      {\"type\": \"住宿类型\", \"priceRange\": \"¥XX-XX/晚\", \"location\": \"位置\", \"features\": [\"特点1\", \"特点2\"]}\n")
	prompt.WriteString("    ]\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"tips\": {\n")
	prompt.WriteString("    \"title\": \"省钱小贴士\",\n")
	prompt.WriteString("    \"items\": [\"贴士1\", \"贴士2\", \"贴士3\", \"贴士4\", \"贴士5\"]\n")
	prompt.WriteString("  }\n")
	prompt.WriteString("}\n\n")

	prompt.WriteString("重要：所有金额只使用\"¥XX\"格式，不要添加\"元\"字")

	return prompt.String()
}
