package models

// Category labels that the pipeline itself refers to. The rest of the
// labels live only in the rule table.
const (
	CategoryPaychecks     = "Paychecks"
	CategoryCashIncome    = "Cash Income"
	CategoryRefunds       = "Refunds"
	CategoryRent          = "Rent/Utilities"
	CategoryTransfers     = "Transfers"
	CategoryMiscellaneous = "Miscellaneous"
)

// CategoryRule is one entry of the ordered rule table: a category name and
// the keywords whose presence in a description selects it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// RuleSet is the ordered rule table. Evaluation is strictly top-to-bottom
// with first match wins, so the slice order is load-bearing; it must never
// pass through a map.
type RuleSet []CategoryRule

// RulesFile is the structure of the categories YAML file.
type RulesFile struct {
	Categories RuleSet `yaml:"categories"`
}

// DefaultRules returns the built-in rule table, used when no categories
// file is present. Miscellaneous stays last with no keywords so the scan
// is total.
func DefaultRules() RuleSet {
	return RuleSet{
		{Name: CategoryPaychecks, Keywords: []string{"PR PAYMENT", "MOBILE DEPOSIT"}},
		{Name: CategoryCashIncome, Keywords: []string{"CASH TIP", "PHOTOGIG", "VENMO FROM", "BAR CASH", "WORK CASH", "CASH JOB"}},
		{Name: "Fees", Keywords: []string{"FEE", "SARASOTA CNTY LIBR"}},
		{Name: "Camera", Keywords: []string{"AMAZON MKTPL*NA09L", "421739594945978", "BEST BUY 00005629 06-20-25 SARASOTA FL 8834"}},
		{Name: "Costco (repaid)", Keywords: []string{"ANNUAL REN"}},
		{Name: "Phone", Keywords: []string{"STRAIGHTTALK", "JLPHONE", "VERIZON", "WALMART.C 702 SW 8TH S 06-22-25BENTONVILLE 8842 DEBIT CARD PURCHASE-PIN"}},
		{Name: CategoryRent, Keywords: []string{"FPL", "FRONTIER", "COMCAST", "WATER", "ELECTRIC", "UTILIT"}},
		{Name: "Eating Out", Keywords: []string{"GECKOS", "TACO BELL", "MCDONALD'S", "JERSEY MIKES", "STARBUCKS", "DINER", "RESTAURANT", "CAFE", "DINE", "SUBWAY", "CHICK-FIL-A", "MAS TACOS", "CASA VIEJA", "400 DEGREE", "PF CHANG", "MELLOW MUSHROOM"}},
		{Name: "Subscriptions", Keywords: []string{"SPOTIFY", "YOUTUBE TV", "NETFLIX", "PELOTON"}},
		{Name: "Transportation", Keywords: []string{"CIRCLE K", "SARASOTA PARK", "UBER", "LYFT", "CAR WASH", "GAS", "TOLL", "BURT'S", "ADVANCE AUTO", "SHELL OIL", "EXXON", "BP"}},
		{Name: "Online Shopping", Keywords: []string{"EBAY", "SHOPIFY", "WALGREENS", "AMAZON", "AMAZON.COM", "AMZNFREETIME"}},
		{Name: CategoryTransfers, Keywords: []string{"TRUIST ONLINE TRANSFER", "DEPOSIT TRANSFER"}},
		{Name: "Truck", Keywords: []string{"DT RETAIL"}},
		{Name: "Insurance", Keywords: []string{"STATE FARM"}},
		{Name: "Clothes", Keywords: []string{"ABERCROMBIE & FITC", "GOODWILL", "MISSION THRIFT", "ONCE UPON A CHILD", "PLATOS CLOSET", "HM.COM"}},
		{Name: "Withdrawals", Keywords: []string{"ATM", "CASH", "WITHDRAWL"}},
		{Name: "Written Checks", Keywords: []string{"CHECK"}},
		{Name: "Venmo", Keywords: []string{"VENMO"}},
		{Name: "Groceries/Home", Keywords: []string{"COSTCO", "TRADER JOE", "BESTBUYCOM80706770", "ACE HARDWARE", "ALDI", "WM SUPERC", "TARGET", "WALMART", "PUBLIX", "WAL-MART", "SAMS CLUB", "SAMSCLUB"}},
		{Name: "Medical", Keywords: []string{"RADIOLOG", "RX", "1-800 CONTACTS", "ODONOGHUE", "DERMATOL", "KORPATH", "CHEEKY", "CVS/PHARMACY", "PRIMEHEALTH"}},
		{Name: "Credit Card", Keywords: []string{"CITI", "BK OF AMER", "CAPITAL ONE"}},
		{Name: "Flight", Keywords: []string{"AIR", "SARASOTA A", "BNA", "CHARLOTTE COUNTY"}},
		{Name: "OD Trans", Keywords: []string{"OVERDRAFT"}},
		{Name: "Entertainment", Keywords: []string{"SKY ZONE", "HOBBYLOBB", "MAIN STREET CR", "PHOTODAY ORDER"}},
		{Name: "Cosmetic", Keywords: []string{"LUSH", "HAPPY NAI", "CHRISTOPHER TR", "MANATEE TECHNICAL"}},
		{Name: "Kids", Keywords: []string{"MISS SARASOTA", "STAGE DOOR", "CHURCH OF"}},
		{Name: "Rosie", Keywords: []string{"DIANE'S"}},
		{Name: CategoryMiscellaneous},
	}
}
