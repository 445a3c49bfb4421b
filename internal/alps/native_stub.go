//go:build !alps || !cgo

package alps

const nativeAvailable = false

// nativeService is the build without libalps. Build with -tags alps on a Cray
// login or MOM node to query the real service.
type nativeService struct{}

func (nativeService) QueryAppInfo(apid Apid) (*AppInfo, error) {
	if apid == 0 {
		return nil, ErrNoIdentity
	}
	return nil, ErrNativeUnavailable
}

func (nativeService) QueryPlacement(apid Apid) (PlacementLayout, error) {
	if apid == 0 {
		return PlacementLayout{}, ErrNoIdentity
	}
	return PlacementLayout{}, ErrNativeUnavailable
}
