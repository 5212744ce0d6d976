package starfield

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcsReflect_ReflectSliceMake(t *testing.T) {
	intSlice := reflectSliceMake(reflect.TypeOf(0))
	assert.Equal(t, reflect.Slice, reflect.TypeOf(intSlice).Kind())
	assert.Equal(t, reflect.Int, reflect.TypeOf(intSlice).Elem().Kind())

	type myStruct struct{ A int }
	structSlice := reflectSliceMake(reflect.TypeOf(myStruct{}))
	assert.Equal(t, reflect.TypeOf(myStruct{}), reflect.TypeOf(structSlice).Elem())
	assert.Empty(t, structSlice)
}

func TestEcsReflect_AppendAndSet(t *testing.T) {
	slice := reflectSliceAppend([]int{10, 20}, reflect.ValueOf(30))
	assert.Equal(t, []int{10, 20, 30}, slice)

	reflectSliceSet(slice, 1, reflect.ValueOf(99))
	assert.Equal(t, []int{10, 99, 30}, slice)
}
