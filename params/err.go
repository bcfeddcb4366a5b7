package params

import "fmt"

var ErrArchivePath = fmt.Errorf("путь до архива не указан")
