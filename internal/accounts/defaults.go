package accounts

import "github.com/aoiro-dev/aoiro/internal/model"

// Codes the statement composer looks for by default.
const (
	SalesCode     = 4100
	PurchasesCode = 5100
)

// DefaultChart returns the chart seeded into a new book. Codes follow the
// blue-form layout: 1xxx assets, 2xxx liabilities, 3xxx equity, 4xxx revenue,
// 5xxx expenses.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: 1111, Name: "現金", Classification: model.Asset},
		{Code: 1112, Name: "普通預金", Classification: model.Asset},
		{Code: 1131, Name: "売掛金", Classification: model.Asset},
		{Code: 1210, Name: "工具器具備品", Classification: model.Asset},
		{Code: 2110, Name: "未払金", Classification: model.Liability},
		{Code: 2200, Name: "借入金", Classification: model.Liability},
		{Code: 3100, Name: "元入金", Classification: model.Equity},
		{Code: 3200, Name: "事業主貸", Classification: model.Equity},
		{Code: 3300, Name: "事業主借", Classification: model.Equity},
		{Code: SalesCode, Name: "売上高", Classification: model.Revenue},
		{Code: 4200, Name: "雑収入", Classification: model.Revenue},
		{Code: PurchasesCode, Name: "仕入高", Classification: model.Expense},
		{Code: 5210, Name: "外注費", Classification: model.Expense},
		{Code: 5300, Name: "地代家賃", Classification: model.Expense},
		{Code: 5400, Name: "通信費", Classification: model.Expense},
		{Code: 5500, Name: "旅費交通費", Classification: model.Expense},
		{Code: 5600, Name: "消耗品費", Classification: model.Expense},
		{Code: 5700, Name: "水道光熱費", Classification: model.Expense},
		{Code: 5800, Name: "接待交際費", Classification: model.Expense},
		{Code: 5910, Name: "減価償却費", Classification: model.Expense},
		{Code: 5930, Name: "新聞図書費", Classification: model.Expense},
		{Code: 5940, Name: "支払手数料", Classification: model.Expense},
		{Code: 5990, Name: "雑費", Classification: model.Expense},
	}
}
