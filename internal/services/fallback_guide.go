package services

import (
	"fmt"

	"github.com/rosecen/qiongyou-travel-guide/internal/models/response_models"
)

// buildFallbackGuide synthesizes a complete guide locally when the AI provider
// is unavailable or returns unusable output. It is a pure function of its
// inputs and cannot fail, which is what guarantees the endpoint always has a
// guide to return.
//
// Known limitation: the style only shapes the overview text; the structural
// content (activities, attractions, food) is the same for every style.
func buildFallbackGuide(city string, budget, days int, styleDescription string) *response_models.Guide {
	budgetPerDay := budget / days

	return &response_models.Guide{
		CityOverview: response_models.CityOverview{
			Title: "城市概况",
			Description: fmt.Sprintf(
				"%s是一个充满魅力的旅游目的地，特别适合%s。这里有丰富的文化底蕴、美味的当地美食和独特的风景，是预算旅行者的理想选择。",
				city, styleDescription),
			Highlights: []string{"经济实惠的旅行体验", "丰富的文化和历史景观", "地道的当地美食", "便利的交通网络"},
		},
		BudgetBreakdown: response_models.BudgetBreakdown{
			Title: "预算分配",
			Total: budget,
			Items: []response_models.BudgetItem{
				{Category: "交通", Amount: budget * 25 / 100, Percentage: 25, Description: "包括往返交通和市内交通费用"},
				{Category: "住宿", Amount: budget * 35 / 100, Percentage: 35, Description: "经济型酒店或青年旅社"},
				{Category: "餐饮", Amount: budget * 25 / 100, Percentage: 25, Description: "当地特色美食和街头小吃"},
				{Category: "景点", Amount: budget * 10 / 100, Percentage: 10, Description: "门票和体验活动费用"},
				{Category: "其他", Amount: budget * 5 / 100, Percentage: 5, Description: "购物和应急费用"},
			},
		},
		Itinerary: response_models.Itinerary{
			Title: "推荐行程",
			Days:  fallbackItineraryDays(city, days),
		},
		Attractions: response_models.AttractionSection{
			Title: "必游景点",
			Items: []response_models.Attraction{
				{Name: city + "标志性景点", Cost: "¥30-50", Rating: "★★★★★", Description: "城市最具代表性的景点，不容错过", Tips: "建议预留2-3小时游览时间"},
				{Name: "历史文化街区", Cost: "免费", Rating: "★★★★☆", Description: "感受当地历史文化氛围", Tips: "适合漫步和拍照"},
				{Name: "当地市场", Cost: "免费", Rating: "★★★★☆", Description: "体验当地生活，品尝街头美食", Tips: "注意食品卫生，适量品尝"},
			},
		},
		Food: response_models.FoodSection{
			Title: "美食攻略",
			Items: []response_models.FoodItem{
				{Name: city + "特色小吃", Price: "¥10-20", Location: "各大街头小摊", Description: "当地最具特色的街头美食"},
				{Name: "传统菜系", Price: "¥30-50", Location: "当地餐厅", Description: "正宗的地方菜，值得一试"},
				{Name: "夜市美食", Price: "¥15-25", Location: "夜市街区", Description: "夜晚的美食天堂"},
			},
		},
		Accommodation: response_models.LodgingSection{
			Title: "住宿建议",
			Items: []response_models.LodgingItem{
				{
					Type:       "青年旅社",
					PriceRange: fmt.Sprintf("¥%d-%d/晚", budgetPerDay*3/10, budgetPerDay*4/10),
					Location:   "市中心或交通便利区域",
					Features:   []string{"经济实惠", "交通便利", "设施齐全"},
				},
				{
					Type:       "经济型酒店",
					PriceRange: fmt.Sprintf("¥%d-%d/晚", budgetPerDay*4/10, budgetPerDay*6/10),
					Location:   "商业区或景点附近",
					Features:   []string{"性价比高", "服务良好", "位置优越"},
				},
			},
		},
		Tips: response_models.TipSection{
			Title: "省钱小贴士",
			Items: []string{
				"选择公共交通出行，购买交通卡更优惠",
				"在当地市场和街头小摊用餐，价格实惠且地道",
				"关注景点的免费开放时间或优惠政策",
				"选择青年旅社或民宿，既省钱又能结交朋友",
				"提前规划行程，避免临时决定的高额费用",
				"携带水杯，减少购买饮料的开支",
				"关注当地的免费活动和节庆庆典",
			},
		},
	}
}

func fallbackItineraryDays(city string, days int) []response_models.ItineraryDay {
	itinerary := make([]response_models.ItineraryDay, 0, days)

	for day := 1; day <= days; day++ {
		var theme string
		switch {
		case day == 1:
			theme = fmt.Sprintf("第%d天：初探%s", day, city)
		case day == days:
			theme = fmt.Sprintf("第%d天：深度体验", day)
		default:
			theme = fmt.Sprintf("第%d天：精彩游览", day)
		}

		itinerary = append(itinerary, response_models.ItineraryDay{
			Day:   day,
			Theme: theme,
			Activities: []response_models.Activity{
				{Time: "09:00-12:00", Activity: fmt.Sprintf("游览%s标志性景点", city), Cost: "¥30-50", Tips: "建议早上前往，避开人流高峰"},
				{Time: "12:00-14:00", Activity: "品尝当地特色美食", Cost: "¥25-40", Tips: "选择当地人推荐的小店"},
				{Time: "14:00-17:00", Activity: "探索文化街区", Cost: "免费", Tips: "可以拍照留念，体验当地文化"},
				{Time: "17:00-19:00", Activity: "休息或购物", Cost: "¥20-50", Tips: "可以买些当地特产"},
			},
		})
	}

	return itinerary
}
