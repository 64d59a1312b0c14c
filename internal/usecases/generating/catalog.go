package generating

import "fmt"

// Salesperson é um vendedor do catálogo sintético
type Salesperson struct {
	ID   string
	Name string
	Team string
}

// Customer pertence a exatamente um vendedor
type Customer struct {
	Code          string
	Name          string
	SalespersonID string
}

// Product é um item vendável com preço unitário
type Product struct {
	Code      string
	Name      string
	Type      string
	UnitPrice float64
}

// Catalog agrupa as tabelas usadas pelo gerador
type Catalog struct {
	Salespersons []Salesperson
	Customers    []Customer
	Products     []Product

	customersBySalesperson map[string][]Customer
}

var Teams = []string{"FD팀", "FC팀", "FR팀", "FS팀", "FL팀"}

var defaultSalespersons = []Salesperson{
	{ID: "SP001", Name: "김민수", Team: "FD팀"},
	{ID: "SP002", Name: "이영희", Team: "FD팀"},
	{ID: "SP003", Name: "박철수", Team: "FD팀"},
	{ID: "SP004", Name: "최지은", Team: "FD팀"},
	{ID: "SP005", Name: "정대호", Team: "FD팀"},
	{ID: "SP006", Name: "강서연", Team: "FD팀"},
	{ID: "SP007", Name: "윤성민", Team: "FC팀"},
	{ID: "SP008", Name: "임수진", Team: "FC팀"},
	{ID: "SP009", Name: "한동욱", Team: "FC팀"},
	{ID: "SP010", Name: "오지혜", Team: "FC팀"},
	{ID: "SP011", Name: "신재현", Team: "FC팀"},
	{ID: "SP012", Name: "배유리", Team: "FC팀"},
	{ID: "SP013", Name: "조현우", Team: "FR팀"},
	{ID: "SP014", Name: "송미경", Team: "FR팀"},
	{ID: "SP015", Name: "권태양", Team: "FR팀"},
	{ID: "SP016", Name: "안소희", Team: "FR팀"},
	{ID: "SP017", Name: "홍준표", Team: "FR팀"},
	{ID: "SP018", Name: "서은아", Team: "FR팀"},
	{ID: "SP019", Name: "노승우", Team: "FS팀"},
	{ID: "SP020", Name: "문지원", Team: "FS팀"},
	{ID: "SP021", Name: "황인호", Team: "FS팀"},
	{ID: "SP022", Name: "유하나", Team: "FS팀"},
	{ID: "SP023", Name: "장민재", Team: "FS팀"},
	{ID: "SP024", Name: "나예린", Team: "FS팀"},
	{ID: "SP025", Name: "표정훈", Team: "FL팀"},
	{ID: "SP026", Name: "차수빈", Team: "FL팀"},
	{ID: "SP027", Name: "구본석", Team: "FL팀"},
	{ID: "SP028", Name: "방민지", Team: "FL팀"},
	{ID: "SP029", Name: "탁준영", Team: "FL팀"},
	{ID: "SP030", Name: "설아영", Team: "FL팀"},
}

var customerBaseNames = []string{
	"한국식품", "글로벌푸드", "프레시마트", "프리미엄식자재", "동네슈퍼",
	"대형마트", "편의점체인", "레스토랑그룹", "호텔식자재", "카페체인",
	"베이커리", "패밀리레스토랑", "패스트푸드", "뷔페", "이탈리안레스토랑",
	"일식당", "중식당", "한식당", "분식집", "치킨전문점",
	"피자전문점", "햄버거전문점", "샌드위치전문점", "도시락전문점", "급식업체",
	"케이터링", "식품제조", "제과점", "제빵소", "떡집",
	"도매상", "유통센터", "물류센터", "식자재마트", "온라인몰",
	"배달전문점", "포장마차", "푸드트럭", "카페테리아", "구내식당",
	"학교급식", "병원급식", "회사급식", "군부대납품", "관공서납품",
	"요양원", "어린이집", "유치원", "학원", "기숙사",
	"스포츠센터", "골프장", "리조트", "펜션", "모텔",
}

var defaultProducts = []Product{
	{Code: "CH001", Name: "모짜렐라치즈1kg", Type: "치즈", UnitPrice: 12000},
	{Code: "CH002", Name: "체다치즈500g", Type: "치즈", UnitPrice: 8500},
	{Code: "CH003", Name: "고다치즈1kg", Type: "치즈", UnitPrice: 15000},
	{Code: "SC001", Name: "토마토파스타소스1L", Type: "소스", UnitPrice: 5500},
	{Code: "SC002", Name: "크림파스타소스1L", Type: "소스", UnitPrice: 6800},
	{Code: "SC004", Name: "마리나라소스2L", Type: "소스", UnitPrice: 9200},
	{Code: "PZ001", Name: "냉동페퍼로니피자12인치", Type: "피자", UnitPrice: 8500},
	{Code: "PZ006", Name: "피자도우12인치10개입", Type: "피자", UnitPrice: 15000},
	{Code: "PZ010", Name: "글루텐프리피자도우", Type: "피자", UnitPrice: 19500},
	{Code: "BC001", Name: "휘핑크림1L", Type: "빵크림", UnitPrice: 8500},
	{Code: "BC002", Name: "생크림1L", Type: "빵크림", UnitPrice: 9200},
	{Code: "BC009", Name: "치즈크림1kg", Type: "빵크림", UnitPrice: 10500},
	{Code: "YS001", Name: "인스턴트드라이이스트500g", Type: "이스트", UnitPrice: 5500},
	{Code: "YS006", Name: "냉동이스트1kg", Type: "이스트", UnitPrice: 8500},
	{Code: "DF001", Name: "크림도넛10개입", Type: "대소공장유탕류", UnitPrice: 12000},
	{Code: "DF008", Name: "피자빵10개입", Type: "대소공장유탕류", UnitPrice: 14000},
	{Code: "MK001", Name: "피자밀키트세트", Type: "대소공장밀키트", UnitPrice: 25000},
	{Code: "MK004", Name: "라자냐밀키트세트", Type: "대소공장밀키트", UnitPrice: 28000},
	{Code: "FP001", Name: "프렌치프라이2.5kg", Type: "냉동감자", UnitPrice: 8500},
	{Code: "FP007", Name: "치즈감자볼1.5kg", Type: "냉동감자", UnitPrice: 14500},
	{Code: "IS002", Name: "스페인올리브유5L", Type: "해외소싱상품류", UnitPrice: 45000},
	{Code: "IS003", Name: "프랑스버터5kg", Type: "해외소싱상품류", UnitPrice: 55000},
	{Code: "IS008", Name: "노르웨이연어5kg", Type: "해외소싱상품류", UnitPrice: 95000},
	{Code: "DS001", Name: "국내산쌀20kg", Type: "국내소싱상품류", UnitPrice: 65000},
	{Code: "DS005", Name: "국내산참기름5L", Type: "국내소싱상품류", UnitPrice: 125000},
	{Code: "DS010", Name: "국내산계란30판", Type: "국내소싱상품류", UnitPrice: 95000},
}

// NewCatalog monta o catálogo padrão com customersPerSalesperson clientes por vendedor.
// Os nomes dos clientes são únicos no catálogo inteiro.
func NewCatalog(customersPerSalesperson int) *Catalog {
	if customersPerSalesperson <= 0 {
		customersPerSalesperson = 1
	}

	customers := make([]Customer, 0, len(defaultSalespersons)*customersPerSalesperson)
	for spIdx, sp := range defaultSalespersons {
		for i := 0; i < customersPerSalesperson; i++ {
			seq := spIdx*customersPerSalesperson + i
			customers = append(customers, Customer{
				Code:          fmt.Sprintf("%s-C%03d", sp.ID, i+1),
				Name:          fmt.Sprintf("%s%d", customerBaseNames[seq%len(customerBaseNames)], seq/len(customerBaseNames)+1),
				SalespersonID: sp.ID,
			})
		}
	}

	return NewCustomCatalog(defaultSalespersons, customers, defaultProducts)
}

// NewCustomCatalog cria um catálogo com tabelas informadas pelo chamador
func NewCustomCatalog(salespersons []Salesperson, customers []Customer, products []Product) *Catalog {
	c := &Catalog{
		Salespersons:           salespersons,
		Customers:              customers,
		Products:               products,
		customersBySalesperson: make(map[string][]Customer, len(salespersons)),
	}
	for _, customer := range customers {
		c.customersBySalesperson[customer.SalespersonID] = append(c.customersBySalesperson[customer.SalespersonID], customer)
	}
	return c
}

// CustomersOf retorna os clientes de um vendedor
func (c *Catalog) CustomersOf(salespersonID string) []Customer {
	return c.customersBySalesperson[salespersonID]
}
