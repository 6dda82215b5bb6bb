package pagination

import (
	"strconv"
)

// DefaultPerPage 列表页默认每页条数
const DefaultPerPage = 10

// Page 一页的元数据，页码已钳制到合法区间
type Page struct {
	Number     int
	PerPage    int
	TotalPages int
	TotalItems int64
	HasNext    bool
	HasPrev    bool
}

// New 根据总条数和请求页码计算分页元数据。
// 越界页码钳制到最近的合法页（首页或末页），不报错。
func New(total int64, number, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset 当前页在有序集合中的起始偏移
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// ParseNumber 解析请求中的页码参数，缺省或非法时回退为第一页
func ParseNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 1
	}
	return number
}
