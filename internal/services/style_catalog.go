package services

import "github.com/rosecen/qiongyou-travel-guide/internal/models/response_models"

type styleEntry struct {
	label string
	short string
	long  string
}

// Travel-style catalog. The long description is interpolated into the LLM
// prompt and the fallback overview; the short one is what the form renders.
var styleCatalog = map[string]styleEntry{
	"cultural": {
		label: "文艺青年",
		short: "咖啡馆、书店与艺术空间",
		long:  "文艺青年风格，重点推荐咖啡馆、书店、艺术馆、文创园区、独立书店、画廊等文艺场所",
	},
	"foodie": {
		label: "美食探索",
		short: "品尝地道美食，寻找小众餐厅",
		long:  "美食探索风格，重点推荐当地小吃、特色餐厅、夜市美食、街头小食、传统菜系",
	},
	"historical": {
		label: "历史文化",
		short: "探索古迹，体验传统文化",
		long:  "历史文化风格，重点推荐博物馆、古迹、传统建筑、文化遗产、历史街区",
	},
	"nature": {
		label: "自然风光",
		short: "亲近自然，享受户外时光",
		long:  "自然风光风格，重点推荐公园、山水、户外活动、风景名胜、徒步路线",
	},
	"nightlife": {
		label: "夜生活",
		short: "酒吧、夜市与夜景",
		long:  "夜生活风格，重点推荐酒吧、夜市、娱乐场所、夜景观赏点、夜间活动",
	},
	"shopping": {
		label: "购物血拼",
		short: "商场、市集与特产店铺",
		long:  "购物血拼风格，重点推荐商场、市集、特产店、潮流店铺、购物街区",
	},
	"relaxed": {
		label: "极简休闲",
		short: "放松身心，慢节奏旅行",
		long:  "极简休闲风格，重点推荐放松场所、慢节奏活动、简单行程、度假式体验",
	},
}

// styleOrder fixes the listing order of the catalog endpoint.
var styleOrder = []string{"cultural", "foodie", "historical", "nature", "nightlife", "shopping", "relaxed"}

// styleDescription returns the prompt description for a style id, empty when
// the id is unknown.
func styleDescription(styleID string) string {
	return styleCatalog[styleID].long
}

// ListTravelStyles returns the selectable styles in a stable order.
func ListTravelStyles() []response_models.TravelStyle {
	styles := make([]response_models.TravelStyle, 0, len(styleOrder))
	for _, id := range styleOrder {
		entry := styleCatalog[id]
		styles = append(styles, response_models.TravelStyle{
			ID:          id,
			Label:       entry.label,
			Description: entry.short,
		})
	}
	return styles
}
