package services

import (
	"sort"

	"github.com/rosecen/qiongyou-travel-guide/internal/models/response_models"
)

// Romanized spellings the weather provider resolves. Display always uses the
// original Chinese name; this table only shapes outbound queries.
var cityNameMap = map[string]string{
	"北京":   "Beijing",
	"上海":   "Shanghai",
	"广州":   "Guangzhou",
	"深圳":   "Shenzhen",
	"杭州":   "Hangzhou",
	"南京":   "Nanjing",
	"苏州":   "Suzhou",
	"成都":   "Chengdu",
	"重庆":   "Chongqing",
	"西安":   "Xian",
	"厦门":   "Xiamen",
	"青岛":   "Qingdao",
	"大连":   "Dalian",
	"天津":   "Tianjin",
	"武汉":   "Wuhan",
	"长沙":   "Changsha",
	"昆明":   "Kunming",
	"丽江":   "Lijiang",
	"桂林":   "Guilin",
	"三亚":   "Sanya",
	"郑州":   "Zhengzhou",
	"济南":   "Jinan",
	"哈尔滨":  "Harbin",
	"长春":   "Changchun",
	"沈阳":   "Shenyang",
	"石家庄":  "Shijiazhuang",
	"太原":   "Taiyuan",
	"呼和浩特": "Hohhot",
	"兰州":   "Lanzhou",
	"银川":   "Yinchuan",
	"西宁":   "Xining",
	"乌鲁木齐": "Urumqi",
	"拉萨":   "Lhasa",
	"贵阳":   "Guiyang",
	"南宁":   "Nanning",
	"海口":   "Haikou",
	"香港":   "Hong Kong",
	"澳门":   "Macau",
	"台北":   "Taipei",
	"宁波":   "Ningbo",
	"无锡":   "Wuxi",
}

// Quick-pick destinations shown on the form.
var popularCities = []string{
	"北京", "上海", "广州", "深圳", "杭州", "南京", "苏州", "成都", "重庆", "西安",
	"厦门", "青岛", "大连", "天津", "武汉", "长沙", "昆明", "丽江", "桂林", "三亚",
}

// cityQueryCandidates builds the ordered spelling variants tried against the
// weather provider: romanized, original, then both with the country suffix.
// For cities without an alias the romanized form falls back to the input, so
// some variants repeat; they are tried anyway to keep the order contract.
func cityQueryCandidates(city string) []string {
	romanized, ok := cityNameMap[city]
	if !ok {
		romanized = city
	}
	return []string{
		romanized,
		city,
		romanized + ",CN",
		city + ",CN",
	}
}

// ListCities returns the city catalog served to the form.
func ListCities() response_models.CityCatalog {
	supported := make([]string, 0, len(cityNameMap))
	for city := range cityNameMap {
		supported = append(supported, city)
	}
	sort.Strings(supported)

	popular := make([]string, len(popularCities))
	copy(popular, popularCities)

	return response_models.CityCatalog{
		Popular:   popular,
		Supported: supported,
	}
}
