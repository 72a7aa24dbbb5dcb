package pricing

import (
	"sort"
	"sync"

	"github.com/multiversx/mx-chain-resources-go/config"
	"github.com/multiversx/mx-chain-resources-go/process"
)

// policyProvider returns the resource control policy active at a given epoch, instantiating
// one policy per configured enable epoch
type policyProvider struct {
	settings  []config.PolicySettings
	instances map[uint32]*ResourceControlPolicy
	mutex     sync.RWMutex
}

// NewPolicyProvider creates a policy provider out of the provided resources config.
// Every settings entry is parsed upfront so that a malformed entry surfaces at
// construction time, not in the middle of a block.
func NewPolicyProvider(resourcesConfig config.ResourcesConfig) (*policyProvider, error) {
	if len(resourcesConfig.PolicySettings) == 0 {
		return nil, process.ErrEmptyPolicySettings
	}

	settings := make([]config.PolicySettings, len(resourcesConfig.PolicySettings))
	copy(settings, resourcesConfig.PolicySettings)
	sort.SliceStable(settings, func(i, j int) bool {
		return settings[i].EnableEpoch < settings[j].EnableEpoch
	})

	for i, policySettings := range settings {
		if i > 0 && settings[i-1].EnableEpoch == policySettings.EnableEpoch {
			return nil, process.ErrDuplicatedPolicyEpoch
		}

		_, err := NewResourceControlPolicy(policySettings)
		if err != nil {
			return nil, err
		}
	}

	return &policyProvider{
		settings:  settings,
		instances: make(map[uint32]*ResourceControlPolicy),
	}, nil
}

// PolicyForEpoch returns the policy active at the provided epoch: the entry with the greatest
// enable epoch not exceeding it. Epochs before the first enable epoch use the first entry.
func (pp *policyProvider) PolicyForEpoch(epoch uint32) process.ResourcePolicyHandler {
	activeSettings := pp.settings[0]
	for _, entry := range pp.settings {
		if entry.EnableEpoch > epoch {
			break
		}

		activeSettings = entry
	}

	return pp.getOrCreateInstance(activeSettings)
}

// getOrCreateInstance uses the "double-checked locking" pattern, as the same policy is
// requested for every priced item of a block
func (pp *policyProvider) getOrCreateInstance(policySettings config.PolicySettings) *ResourceControlPolicy {
	pp.mutex.RLock()
	instance, ok := pp.instances[policySettings.EnableEpoch]
	pp.mutex.RUnlock()
	if ok {
		return instance
	}

	pp.mutex.Lock()
	defer pp.mutex.Unlock()

	instance, ok = pp.instances[policySettings.EnableEpoch]
	if ok {
		return instance
	}

	newInstance, err := NewResourceControlPolicy(policySettings)
	if err != nil {
		// not reachable: the settings were parsed at construction time
		log.Error("policyProvider.getOrCreateInstance: unexpected error when creating a policy instance",
			"enable epoch", policySettings.EnableEpoch,
			"error", err,
		)
		newInstance = NewDefaultResourceControlPolicy()
	}

	pp.instances[policySettings.EnableEpoch] = newInstance

	return newInstance
}

// IsInterfaceNil returns true if there is no value under the interface
func (pp *policyProvider) IsInterfaceNil() bool {
	return pp == nil
}
