package params

// Строки для справки

const (
	versionDesc = "Печать номера версии и выход"
	versionText = `qicrestore 1.0.0
Восстановление файлов из архива резервного копирования QIC
(формат Microsoft Backup для Windows 9x/ME).
`

	usageExample = "[-o <директория>] [-v] <путь до архива>"

	outputDirDesc = "Директория для восстановленных файлов (по умолчанию текущая)"
	verboseDesc   = "Печатать диагностику хода восстановления в stderr"
	helpDesc      = "Показать эту помощь"
)
