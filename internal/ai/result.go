package ai

// Result - значение или ошибка вызова модели.
// Решение о значении по умолчанию принимает тот, кто знает контракт операции.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

// OrElse возвращает значение или def при ошибке
func (r Result[T]) OrElse(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Value
}
