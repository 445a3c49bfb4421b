//go:build alps && cgo

package alps

import (
	"unsafe"
)

// Build with: go build -tags alps
// pkg-config must find cray-alps and cray-alpsutil (module load alps on the login node).

/*
 #cgo pkg-config: cray-alps cray-alpsutil
 #cgo CFLAGS: -std=gnu99 -O2
 #include <stdint.h>
 #include <stdlib.h>
 #include <string.h>
 #include <alps/apInfo.h>
 #include <alps/alps_toolAssist.h>

// Declared locally because libalps.h does not compile on its own.
extern int alps_get_appinfo_ver3_err(uint64_t apid, appInfo_t *appinfo,
                       cmdDetail_t **cmdDetail, placeNodeList_ver3_t **places,
                       char **errMsg, int *err);
extern int alps_get_placement_info(uint64_t apid, alpsAppLayout_t *appLayout,
                       int **placementList, int **targetNids, int **targetPes,
                       int **startPe, int **totalPes, int **nodePes, int **peCpus);

static int queryFailed(int rc, int err, const char *msg) {
    return rc < 0 || err != 0 || (msg != NULL && msg[0] != '\0');
}

// placement copies the control nid and the per-PE nid list for apid into
// caller-owned memory. *peNids must be released with free().
static int placement(uint64_t apid, int *ctrlNid, int *numPes, int **peNids,
                     char **errMsg, int *err) {
    appInfo_t info;
    cmdDetail_t *cmds = NULL;
    placeNodeList_ver3_t *places = NULL;
    alpsAppLayout_t layout;
    int *list = NULL;
    int i, rc, total = 0;

    *ctrlNid = 0;
    *numPes = 0;
    *peNids = NULL;

    rc = alps_get_appinfo_ver3_err(apid, &info, &cmds, &places, errMsg, err);
    if (queryFailed(rc, *err, *errMsg)) {
        free(cmds);
        free(places);
        return rc < 0 ? rc : -1;
    }
    for (i = 0; i < info.numCmds; i++)
        total += cmds[i].width;
    *ctrlNid = info.aprunNid;
    free(cmds);
    free(places);

    memset(&layout, 0, sizeof(layout));
    rc = alps_get_placement_info(apid, &layout, &list, NULL, NULL, NULL, NULL, NULL, NULL);
    if (rc < 0) {
        free(list);
        return rc;
    }
    *numPes = total;
    *peNids = list;
    return 0;
}
*/
import "C"

const nativeAvailable = true

type nativeService struct{}

func (nativeService) QueryAppInfo(apid Apid) (*AppInfo, error) {
	if apid == 0 {
		return nil, ErrNoIdentity
	}

	var info C.appInfo_t
	var cmds *C.cmdDetail_t
	var places *C.placeNodeList_ver3_t
	var errMsg *C.char
	var errCode C.int

	rc := C.alps_get_appinfo_ver3_err(C.uint64_t(apid), &info, &cmds, &places, &errMsg, &errCode)
	release := func() {
		C.free(unsafe.Pointer(cmds))
		C.free(unsafe.Pointer(places))
	}
	if C.queryFailed(rc, errCode, errMsg) != 0 {
		release()
		return nil, NewQueryError("appinfo", apid, int(errCode), goString(errMsg))
	}

	n := int(info.numCmds)
	records := make([]CommandRecord, 0, n)
	if n > 0 && cmds != nil {
		for _, c := range unsafe.Slice(cmds, n) {
			records = append(records, CommandRecord{
				Width:        int(c.width),
				Depth:        int(c.depth),
				FixedPerNode: int(c.fixedPerNode),
				NodeCnt:      int(c.nodeCnt),
				CpusPerCU:    int(c.cpusPerCU),
				PesPerSeg:    int(c.pesPerSeg),
				NodeSegCnt:   int(c.nodeSegCnt),
				SegBits:      int(c.segBits),
				Accel:        accelFromNative(int(c.accelType)),
			})
		}
	}

	return NewAppInfo(AppSummary{NumCmds: n}, records, release), nil
}

func (nativeService) QueryPlacement(apid Apid) (PlacementLayout, error) {
	if apid == 0 {
		return PlacementLayout{}, ErrNoIdentity
	}

	var ctrlNid, numPes, errCode C.int
	var peNids *C.int
	var errMsg *C.char

	rc := C.placement(C.uint64_t(apid), &ctrlNid, &numPes, &peNids, &errMsg, &errCode)
	defer C.free(unsafe.Pointer(peNids))
	if rc != 0 {
		return PlacementLayout{}, NewQueryError("placement", apid, int(errCode), goString(errMsg))
	}

	layout := PlacementLayout{
		ControlNid: int(ctrlNid),
		NumPes:     int(numPes),
	}
	if layout.NumPes > 0 && peNids != nil {
		layout.PeNids = make([]int, 0, layout.NumPes)
		for _, nid := range unsafe.Slice(peNids, layout.NumPes) {
			layout.PeNids = append(layout.PeNids, int(nid))
		}
	}
	return layout, nil
}

func accelFromNative(t int) Accelerator {
	switch t {
	case int(C.accel_arch_gpu):
		return AccelGPU
	case int(C.accel_arch_knc):
		return AccelKNC
	default:
		return AccelNone
	}
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
