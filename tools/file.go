package tools

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
