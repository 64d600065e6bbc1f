package cache

import "errors"

// ErrNotConfirmed означает, что адрес API еще не подтвержден и синхронизация запрещена
var ErrNotConfirmed = errors.New("api endpoint is not confirmed")
